package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kr0n4k/blog-project/internal/event"
)

type fakeStore struct {
	Store

	comment    *Comment
	commentErr error
	like       *Like
	likeErr    error
}

func (f *fakeStore) CreateComment(ctx context.Context, postID, userID, text string) (*Comment, error) {
	return f.comment, f.commentErr
}

func (f *fakeStore) UpdateComment(ctx context.Context, id, userID, text string) (*Comment, error) {
	return f.comment, f.commentErr
}

func (f *fakeStore) DeleteComment(ctx context.Context, id, userID string) (*Comment, error) {
	return f.comment, f.commentErr
}

func (f *fakeStore) CreateLike(ctx context.Context, postID, userID string) (*Like, error) {
	return f.like, f.likeErr
}

func receive(t *testing.T, ch <-chan any) any {
	t.Helper()
	select {
	case payload := <-ch:
		return payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestCreateCommentPublishesEvent(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()

	comment := &Comment{ID: "c1", PostID: "p1", UserID: "u1", Text: "hello"}
	svc := NewService(&fakeStore{comment: comment}, bus)

	sub := bus.Subscribe(context.Background(), event.TopicCommentAdded)

	got, err := svc.CreateComment(context.Background(), "p1", "u1", "hello")
	if err != nil {
		t.Fatalf("createComment: %v", err)
	}
	if got.ID != "c1" {
		t.Fatalf("got comment %+v", got)
	}

	published, ok := receive(t, sub).(Comment)
	if !ok {
		t.Fatal("published payload is not a Comment")
	}
	if published.ID != "c1" || published.Text != "hello" {
		t.Fatalf("published %+v", published)
	}
}

func TestUpdateAndDeleteCommentPublishToOwnTopics(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()

	comment := &Comment{ID: "c1", PostID: "p1"}
	svc := NewService(&fakeStore{comment: comment}, bus)

	updated := bus.Subscribe(context.Background(), event.TopicCommentUpdated)
	deleted := bus.Subscribe(context.Background(), event.TopicCommentDeleted)

	if _, err := svc.UpdateComment(context.Background(), "c1", "u1", "edit"); err != nil {
		t.Fatalf("updateComment: %v", err)
	}
	if _, err := svc.DeleteComment(context.Background(), "c1", "u1"); err != nil {
		t.Fatalf("deleteComment: %v", err)
	}

	if got := receive(t, updated).(Comment); got.ID != "c1" {
		t.Fatalf("updated topic got %+v", got)
	}
	if got := receive(t, deleted).(Comment); got.ID != "c1" {
		t.Fatalf("deleted topic got %+v", got)
	}
}

func TestLikePostPublishesEvent(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()

	like := &Like{ID: "l1", PostID: "p1", UserID: "u1"}
	svc := NewService(&fakeStore{like: like}, bus)

	sub := bus.Subscribe(context.Background(), event.TopicLikeAdded)

	if _, err := svc.LikePost(context.Background(), "p1", "u1"); err != nil {
		t.Fatalf("likePost: %v", err)
	}

	published := receive(t, sub).(Like)
	if published.ID != "l1" {
		t.Fatalf("published %+v", published)
	}
}

func TestFailedMutationPublishesNothing(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()

	svc := NewService(&fakeStore{likeErr: ErrAlreadyLiked}, bus)

	sub := bus.Subscribe(context.Background(), event.TopicLikeAdded)

	_, err := svc.LikePost(context.Background(), "p1", "u1")
	if !errors.Is(err, ErrAlreadyLiked) {
		t.Fatalf("got %v, want ErrAlreadyLiked", err)
	}

	select {
	case payload := <-sub:
		t.Fatalf("event published for failed mutation: %v", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMissingCommentOnUpdate(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()

	svc := NewService(&fakeStore{}, bus)

	_, err := svc.UpdateComment(context.Background(), "nope", "u1", "edit")
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("got %v, want ErrCommentNotFound", err)
	}
}
