package event

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func receiveOne(t *testing.T, ch <-chan any) any {
	t.Helper()
	select {
	case payload, ok := <-ch:
		if !ok {
			t.Fatal("channel closed while waiting for delivery")
		}
		return payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delivery")
		return nil
	}
}

func assertNoDelivery(t *testing.T, ch <-chan any) {
	t.Helper()
	select {
	case payload, ok := <-ch:
		if ok {
			t.Fatalf("unexpected delivery: %v", payload)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishReachesEverySubscriber(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx := context.Background()
	const n = 5

	channels := make([]<-chan any, n)
	for i := range channels {
		channels[i] = bus.Subscribe(ctx, TopicCommentAdded)
	}

	bus.Publish(TopicCommentAdded, "payload")

	for i, ch := range channels {
		if got := receiveOne(t, ch); got != "payload" {
			t.Errorf("subscriber %d: got %v, want payload", i, got)
		}
	}

	// Exactly one copy each.
	for i, ch := range channels {
		select {
		case payload := <-ch:
			t.Errorf("subscriber %d: duplicate delivery %v", i, payload)
		default:
		}
	}
}

func TestDeliveryOrderMatchesPublishOrder(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch := bus.Subscribe(context.Background(), TopicLikeAdded)

	for i := 0; i < 10; i++ {
		bus.Publish(TopicLikeAdded, i)
	}

	for want := 0; want < 10; want++ {
		if got := receiveOne(t, ch); got != want {
			t.Fatalf("got %v, want %d", got, want)
		}
	}
}

func TestNoRetroactiveDelivery(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	bus.Publish(TopicCommentAdded, "early")

	ch := bus.Subscribe(context.Background(), TopicCommentAdded)
	bus.Publish(TopicCommentAdded, "late")

	if got := receiveOne(t, ch); got != "late" {
		t.Fatalf("got %v, want late", got)
	}
}

func TestPublishWithNoSubscribersIsDropped(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	// Must not panic or block.
	bus.Publish(TopicCommentDeleted, "nobody home")
}

func TestTopicsAreIndependent(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	likes := bus.Subscribe(context.Background(), TopicLikeAdded)
	comments := bus.Subscribe(context.Background(), TopicCommentAdded)

	bus.Publish(TopicLikeAdded, "like")

	if got := receiveOne(t, likes); got != "like" {
		t.Fatalf("got %v, want like", got)
	}
	select {
	case payload := <-comments:
		t.Fatalf("comment subscriber received %v from like topic", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestContextCancelReleasesSubscription(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := bus.Subscribe(ctx, TopicCommentAdded)

	cancel()

	// The channel closes once the registration is released.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after context cancellation")
		}
	}
}

func TestCancelledSubscriberDoesNotAffectOthers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	gone := bus.Subscribe(ctx, TopicCommentAdded)
	cancel()

	// Wait for the registration to be released.
	deadline := time.After(time.Second)
	for open := true; open; {
		select {
		case _, open = <-gone:
		case <-deadline:
			t.Fatal("cancelled subscription never released")
		}
	}

	remaining := bus.Subscribe(context.Background(), TopicCommentAdded)
	bus.Publish(TopicCommentAdded, "still here")

	if got := receiveOne(t, remaining); got != "still here" {
		t.Fatalf("got %v, want still here", got)
	}
}

func TestCloseClosesSubscriberChannels(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe(context.Background(), TopicCommentAdded)

	bus.Close()

	assertNoDelivery(t, ch)

	// Publish and subscribe after close are inert.
	bus.Publish(TopicCommentAdded, "ignored")
	late := bus.Subscribe(context.Background(), TopicCommentAdded)
	if _, ok := <-late; ok {
		t.Fatal("subscribe after close returned an open channel")
	}
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var publishers, consumers sync.WaitGroup
	for i := 0; i < 8; i++ {
		publishers.Add(1)
		go func(i int) {
			defer publishers.Done()
			for j := 0; j < 100; j++ {
				bus.Publish(TopicLikeAdded, fmt.Sprintf("%d-%d", i, j))
			}
		}(i)

		consumers.Add(1)
		go func() {
			defer consumers.Done()
			ch := bus.Subscribe(ctx, TopicLikeAdded)
			for range ch {
			}
		}()
	}

	publishers.Wait()
	cancel()
	consumers.Wait()
}
