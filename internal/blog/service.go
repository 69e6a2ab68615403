package blog

import (
	"context"

	"github.com/Kr0n4k/blog-project/internal/event"
)

// Store is the persistence surface the service needs. *SQLStore satisfies
// it; tests substitute an in-memory fake.
type Store interface {
	CreatePost(ctx context.Context, p CreatePostParams) (*Post, error)
	PostByID(ctx context.Context, id string) (*Post, error)
	PostsByUser(ctx context.Context, userID string) ([]Post, error)
	RecentPosts(ctx context.Context, limit int) ([]Post, error)
	SearchPosts(ctx context.Context, query string, limit, offset int) ([]Post, error)
	UpdatePost(ctx context.Context, id, userID string, p UpdatePostParams) (*Post, error)
	DeletePost(ctx context.Context, id, userID string) (bool, error)

	CreateComment(ctx context.Context, postID, userID, text string) (*Comment, error)
	UpdateComment(ctx context.Context, id, userID, text string) (*Comment, error)
	DeleteComment(ctx context.Context, id, userID string) (*Comment, error)
	CommentsByPost(ctx context.Context, postID string) ([]Comment, error)

	CreateLike(ctx context.Context, postID, userID string) (*Like, error)
	LikesByPost(ctx context.Context, postID string) ([]Like, error)
}

// Service performs blog mutations and, once a mutation has committed,
// publishes the resulting domain event. A publish that reaches nobody is
// fine; the write is never rolled back for the sake of notification.
type Service struct {
	store Store
	bus   *event.Bus
}

func NewService(store Store, bus *event.Bus) *Service {
	return &Service{store: store, bus: bus}
}

func (s *Service) CreatePost(ctx context.Context, p CreatePostParams) (*Post, error) {
	return s.store.CreatePost(ctx, p)
}

func (s *Service) PostByID(ctx context.Context, id string) (*Post, error) {
	return s.store.PostByID(ctx, id)
}

func (s *Service) PostsByUser(ctx context.Context, userID string) ([]Post, error) {
	return s.store.PostsByUser(ctx, userID)
}

func (s *Service) RecentPosts(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.store.RecentPosts(ctx, limit)
}

func (s *Service) SearchPosts(ctx context.Context, query string, limit, offset int) ([]Post, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.store.SearchPosts(ctx, query, limit, offset)
}

func (s *Service) UpdatePost(ctx context.Context, id, userID string, p UpdatePostParams) (*Post, error) {
	post, err := s.store.UpdatePost(ctx, id, userID, p)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *Service) DeletePost(ctx context.Context, id, userID string) error {
	ok, err := s.store.DeletePost(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPostNotFound
	}
	return nil
}

func (s *Service) CreateComment(ctx context.Context, postID, userID, text string) (*Comment, error) {
	comment, err := s.store.CreateComment(ctx, postID, userID, text)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(event.TopicCommentAdded, *comment)
	return comment, nil
}

func (s *Service) UpdateComment(ctx context.Context, id, userID, text string) (*Comment, error) {
	comment, err := s.store.UpdateComment(ctx, id, userID, text)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	s.bus.Publish(event.TopicCommentUpdated, *comment)
	return comment, nil
}

func (s *Service) DeleteComment(ctx context.Context, id, userID string) (*Comment, error) {
	comment, err := s.store.DeleteComment(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	s.bus.Publish(event.TopicCommentDeleted, *comment)
	return comment, nil
}

func (s *Service) CommentsByPost(ctx context.Context, postID string) ([]Comment, error) {
	return s.store.CommentsByPost(ctx, postID)
}

func (s *Service) LikePost(ctx context.Context, postID, userID string) (*Like, error) {
	like, err := s.store.CreateLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(event.TopicLikeAdded, *like)
	return like, nil
}

func (s *Service) LikesByPost(ctx context.Context, postID string) ([]Like, error) {
	return s.store.LikesByPost(ctx, postID)
}
