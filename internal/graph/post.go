package graph

import (
	"context"

	"github.com/Kr0n4k/blog-project/internal/blog"
)

type createPostInput struct {
	Title  string
	Text   *string
	Photos *[]string
	Videos *[]string
}

type updatePostInput struct {
	Title  *string
	Text   *string
	Photos *[]string
	Videos *[]string
}

func (r *Resolver) CreatePost(ctx context.Context, args struct{ Data createPostInput }) (*postResolver, error) {
	userID, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}

	params := blog.CreatePostParams{
		UserID: userID,
		Title:  args.Data.Title,
	}
	if args.Data.Text != nil {
		params.Text = *args.Data.Text
	}
	if args.Data.Photos != nil {
		params.Photos = *args.Data.Photos
	}
	if args.Data.Videos != nil {
		params.Videos = *args.Data.Videos
	}

	post, err := r.blog.CreatePost(ctx, params)
	if err != nil {
		return nil, err
	}

	return &postResolver{root: r, p: *post}, nil
}

func (r *Resolver) GetUserPosts(ctx context.Context, args struct{ ID string }) ([]*postResolver, error) {
	posts, err := r.blog.PostsByUser(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	return r.postResolvers(posts), nil
}

func (r *Resolver) GetMyPosts(ctx context.Context) ([]*postResolver, error) {
	userID, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := r.blog.PostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.postResolvers(posts), nil
}

func (r *Resolver) GetRandomPosts(ctx context.Context, args struct{ Limit *int32 }) ([]*postResolver, error) {
	posts, err := r.blog.RecentPosts(ctx, intOr(args.Limit, 10))
	if err != nil {
		return nil, err
	}
	return r.postResolvers(posts), nil
}

func (r *Resolver) SearchPosts(ctx context.Context, args struct {
	Query  string
	Limit  *int32
	Offset *int32
}) ([]*postResolver, error) {
	posts, err := r.blog.SearchPosts(ctx, args.Query, intOr(args.Limit, 10), intOr(args.Offset, 0))
	if err != nil {
		return nil, err
	}
	return r.postResolvers(posts), nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID   string
	Data updatePostInput
}) (*postResolver, error) {
	userID, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}

	params := blog.UpdatePostParams{
		Title: args.Data.Title,
		Text:  args.Data.Text,
	}
	if args.Data.Photos != nil {
		params.Photos = *args.Data.Photos
	}
	if args.Data.Videos != nil {
		params.Videos = *args.Data.Videos
	}

	post, err := r.blog.UpdatePost(ctx, args.ID, userID, params)
	if err != nil {
		return nil, err
	}

	return &postResolver{root: r, p: *post}, nil
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID string }) (bool, error) {
	userID, err := r.viewer(ctx)
	if err != nil {
		return false, err
	}

	if err := r.blog.DeletePost(ctx, args.ID, userID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) CreateComment(ctx context.Context, args struct {
	PostID string
	Text   string
}) (*commentResolver, error) {
	userID, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}

	comment, err := r.blog.CreateComment(ctx, args.PostID, userID, args.Text)
	if err != nil {
		return nil, err
	}

	return &commentResolver{root: r, c: *comment}, nil
}

func (r *Resolver) UpdateComment(ctx context.Context, args struct {
	ID   string
	Text string
}) (*commentResolver, error) {
	userID, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}

	comment, err := r.blog.UpdateComment(ctx, args.ID, userID, args.Text)
	if err != nil {
		return nil, err
	}

	return &commentResolver{root: r, c: *comment}, nil
}

func (r *Resolver) DeleteComment(ctx context.Context, args struct{ ID string }) (*commentResolver, error) {
	userID, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}

	comment, err := r.blog.DeleteComment(ctx, args.ID, userID)
	if err != nil {
		return nil, err
	}

	return &commentResolver{root: r, c: *comment}, nil
}

func (r *Resolver) LikePost(ctx context.Context, args struct{ PostID string }) (*likeResolver, error) {
	userID, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}

	like, err := r.blog.LikePost(ctx, args.PostID, userID)
	if err != nil {
		return nil, err
	}

	return &likeResolver{l: *like}, nil
}

func (r *Resolver) postResolvers(posts []blog.Post) []*postResolver {
	resolvers := make([]*postResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &postResolver{root: r, p: p})
	}
	return resolvers
}
