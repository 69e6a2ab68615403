package graph

import (
	"context"
	"errors"
	"time"

	"github.com/Kr0n4k/blog-project/internal/blog"
	"github.com/Kr0n4k/blog-project/internal/session"
	"github.com/Kr0n4k/blog-project/internal/user"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type sessionResolver struct {
	s session.Session
}

func (r *sessionResolver) ID() string        { return r.s.ID }
func (r *sessionResolver) UserID() string    { return r.s.UserID }
func (r *sessionResolver) CreatedAt() string { return formatTime(r.s.CreatedAt) }

type authResolver struct {
	result *session.LoginResult
}

func (r *authResolver) Success() bool { return r.result.Success }

func (r *authResolver) Message() string { return r.result.Message }

func (r *authResolver) User() *userResolver {
	return &userResolver{u: r.result.User}
}

func (r *authResolver) Session() *sessionResolver {
	return &sessionResolver{s: r.result.Session}
}

type userResolver struct {
	u user.PublicUser
}

func (r *userResolver) ID() string        { return r.u.ID }
func (r *userResolver) UserName() string  { return r.u.UserName }
func (r *userResolver) Email() string     { return r.u.Email }
func (r *userResolver) FirstName() string { return r.u.FirstName }
func (r *userResolver) LastName() string  { return r.u.LastName }
func (r *userResolver) Avatar() *string   { return r.u.Avatar }
func (r *userResolver) Bio() *string      { return r.u.Bio }
func (r *userResolver) CreatedAt() string { return formatTime(r.u.CreatedAt) }
func (r *userResolver) UpdatedAt() string { return formatTime(r.u.UpdatedAt) }

type postResolver struct {
	root *Resolver
	p    blog.Post
}

func (r *postResolver) ID() string        { return r.p.ID }
func (r *postResolver) UserID() string    { return r.p.UserID }
func (r *postResolver) Title() string     { return r.p.Title }
func (r *postResolver) Text() string      { return r.p.Text }
func (r *postResolver) Photos() []string  { return r.p.Photos }
func (r *postResolver) Videos() []string  { return r.p.Videos }
func (r *postResolver) CreatedAt() string { return formatTime(r.p.CreatedAt) }
func (r *postResolver) UpdatedAt() string { return formatTime(r.p.UpdatedAt) }

func (r *postResolver) Comments(ctx context.Context) ([]*commentResolver, error) {
	comments, err := r.root.blog.CommentsByPost(ctx, r.p.ID)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*commentResolver, 0, len(comments))
	for _, c := range comments {
		resolvers = append(resolvers, &commentResolver{root: r.root, c: c})
	}
	return resolvers, nil
}

func (r *postResolver) Likes(ctx context.Context) ([]*likeResolver, error) {
	likes, err := r.root.blog.LikesByPost(ctx, r.p.ID)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*likeResolver, 0, len(likes))
	for _, l := range likes {
		resolvers = append(resolvers, &likeResolver{l: l})
	}
	return resolvers, nil
}

func (r *postResolver) User(ctx context.Context) (*userResolver, error) {
	return r.root.lookupUser(ctx, r.p.UserID)
}

type commentResolver struct {
	root *Resolver
	c    blog.Comment
}

func (r *commentResolver) ID() string        { return r.c.ID }
func (r *commentResolver) PostID() string    { return r.c.PostID }
func (r *commentResolver) UserID() string    { return r.c.UserID }
func (r *commentResolver) Text() string      { return r.c.Text }
func (r *commentResolver) CreatedAt() string { return formatTime(r.c.CreatedAt) }
func (r *commentResolver) UpdatedAt() string { return formatTime(r.c.UpdatedAt) }

func (r *commentResolver) User(ctx context.Context) (*userResolver, error) {
	return r.root.lookupUser(ctx, r.c.UserID)
}

type likeResolver struct {
	l blog.Like
}

func (r *likeResolver) ID() string        { return r.l.ID }
func (r *likeResolver) PostID() string    { return r.l.PostID }
func (r *likeResolver) UserID() string    { return r.l.UserID }
func (r *likeResolver) CreatedAt() string { return formatTime(r.l.CreatedAt) }

// lookupUser resolves a nested user field; a vanished author is rendered
// as null rather than failing the whole query. Anything other than a
// missing user still propagates.
func (r *Resolver) lookupUser(ctx context.Context, id string) (*userResolver, error) {
	u, err := r.users.FindByID(ctx, id)
	if errors.Is(err, user.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &userResolver{u: u.Public()}, nil
}
