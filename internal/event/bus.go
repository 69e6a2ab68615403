package event

import (
	"context"
	"sync"

	"github.com/Kr0n4k/blog-project/internal/logger"
)

// Topic names a category of domain event.
type Topic string

const (
	TopicLikeAdded      Topic = "likeAdded"
	TopicCommentAdded   Topic = "commentAdded"
	TopicCommentUpdated Topic = "commentUpdated"
	TopicCommentDeleted Topic = "commentDeleted"
)

// subscriberBuffer bounds how far a slow consumer may fall behind before
// deliveries to it are dropped. Publishers are never blocked.
const subscriberBuffer = 16

type subscriber struct {
	ch   chan any
	done chan struct{}
}

// Bus is an in-process broadcast publish/subscribe mechanism. One instance
// is constructed at startup and handed to every component that publishes
// or subscribes; it lives for the process lifetime.
//
// Delivery is at-most-once and best-effort: an event published with no
// subscribers attached is dropped, nothing is buffered or replayed, and a
// subscriber only sees events published after it attached. Within one
// topic every subscriber observes publishes in publish order.
type Bus struct {
	mu     sync.RWMutex
	topics map[Topic]map[*subscriber]struct{}
	closed bool
}

func NewBus() *Bus {
	return &Bus{
		topics: make(map[Topic]map[*subscriber]struct{}),
	}
}

// Publish hands the payload to every subscriber currently attached to the
// topic. A subscriber whose buffer is full loses this delivery; the
// publisher is never blocked and never told.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for sub := range b.topics[topic] {
		select {
		case sub.ch <- payload:
		default:
			logger.Warn("event dropped for slow subscriber", map[string]any{
				"topic": string(topic),
			})
		}
	}
}

// Subscribe attaches a new independent subscriber to the topic and returns
// its delivery channel. The registration is released and the channel
// closed when ctx is done or the bus shuts down.
func (b *Bus) Subscribe(ctx context.Context, topic Topic) <-chan any {
	sub := &subscriber{
		ch:   make(chan any, subscriberBuffer),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch
	}
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[*subscriber]struct{})
		b.topics[topic] = subs
	}
	subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(topic, sub)
		case <-sub.done:
		}
	}()

	return sub.ch
}

func (b *Bus) unsubscribe(topic Topic, sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.topics[topic]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.topics, topic)
	}
	close(sub.ch)
}

// Close tears the bus down, closing every subscriber channel. Further
// publishes are dropped and further subscribes return a closed channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for _, subs := range b.topics {
		for sub := range subs {
			close(sub.done)
			close(sub.ch)
		}
	}
	b.topics = make(map[Topic]map[*subscriber]struct{})
}
