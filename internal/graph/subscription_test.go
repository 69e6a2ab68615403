package graph

import (
	"context"
	"testing"
	"time"

	"github.com/Kr0n4k/blog-project/internal/blog"
	"github.com/Kr0n4k/blog-project/internal/event"
)

func receiveComment(t *testing.T, ch <-chan *commentResolver) *commentResolver {
	t.Helper()
	select {
	case c, ok := <-ch:
		if !ok {
			t.Fatal("stream closed while waiting for event")
		}
		return c
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func assertSilent(t *testing.T, ch <-chan *commentResolver) {
	t.Helper()
	select {
	case c, ok := <-ch:
		if ok {
			t.Fatalf("unexpected event for comment %s", c.ID())
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCommentAddedFiltersByPostID(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()
	r := NewResolver(nil, nil, nil, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcherA, err := r.CommentAdded(ctx, postIDArgs{PostID: "p1"})
	if err != nil {
		t.Fatalf("subscribe watcherA: %v", err)
	}
	watcherB, err := r.CommentAdded(ctx, postIDArgs{PostID: "p1"})
	if err != nil {
		t.Fatalf("subscribe watcherB: %v", err)
	}
	other, err := r.CommentAdded(ctx, postIDArgs{PostID: "p2"})
	if err != nil {
		t.Fatalf("subscribe other: %v", err)
	}

	bus.Publish(event.TopicCommentAdded, blog.Comment{ID: "c1", PostID: "p1", Text: "hi"})

	// Both p1 watchers receive exactly one copy.
	for name, ch := range map[string]<-chan *commentResolver{"A": watcherA, "B": watcherB} {
		got := receiveComment(t, ch)
		if got.ID() != "c1" || got.Text() != "hi" {
			t.Errorf("watcher %s: got id=%s text=%s", name, got.ID(), got.Text())
		}
	}

	// The p2 watcher sees nothing.
	assertSilent(t, other)
}

func TestCommentTopicsDoNotCross(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()
	r := NewResolver(nil, nil, nil, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	added, _ := r.CommentAdded(ctx, postIDArgs{PostID: "p1"})
	updated, _ := r.CommentUpdated(ctx, postIDArgs{PostID: "p1"})

	bus.Publish(event.TopicCommentUpdated, blog.Comment{ID: "c1", PostID: "p1"})

	if got := receiveComment(t, updated); got.ID() != "c1" {
		t.Fatalf("updated stream got %s", got.ID())
	}
	assertSilent(t, added)
}

func TestLikeAddedStream(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()
	r := NewResolver(nil, nil, nil, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	likes, err := r.LikeAdded(ctx, postIDArgs{PostID: "p1"})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	bus.Publish(event.TopicLikeAdded, blog.Like{ID: "l1", PostID: "p1", UserID: "u1"})
	bus.Publish(event.TopicLikeAdded, blog.Like{ID: "l2", PostID: "p2", UserID: "u1"})
	bus.Publish(event.TopicLikeAdded, blog.Like{ID: "l3", PostID: "p1", UserID: "u2"})

	select {
	case got := <-likes:
		if got.ID() != "l1" {
			t.Fatalf("first event id %s, want l1", got.ID())
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first like")
	}

	// l2 targets another post and is filtered out; l3 follows.
	select {
	case got := <-likes:
		if got.ID() != "l3" {
			t.Fatalf("second event id %s, want l3", got.ID())
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for second like")
	}
}

func TestStreamClosesOnDisconnect(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()
	r := NewResolver(nil, nil, nil, bus)

	ctx, cancel := context.WithCancel(context.Background())
	stream, _ := r.CommentAdded(ctx, postIDArgs{PostID: "p1"})

	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-stream:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream not closed after disconnect")
		}
	}
}
