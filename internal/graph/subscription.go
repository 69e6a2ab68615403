package graph

import (
	"context"

	"github.com/Kr0n4k/blog-project/internal/blog"
	"github.com/Kr0n4k/blog-project/internal/event"
)

// The bus delivers every event for a topic to every subscriber of that
// topic; it knows nothing about posts. Per-post filtering happens here,
// comparing the payload's post id against the subscription argument
// before anything is forwarded to the transport.
//
// The out channel is unbuffered: a consumer that stops reading backs the
// forwarding goroutine up into the bus subscription's buffer, and once
// that fills the bus drops further deliveries for this subscriber. Slow
// consumers lose events rather than stalling publishers.

type postIDArgs struct {
	PostID string
}

func (r *Resolver) LikeAdded(ctx context.Context, args postIDArgs) (<-chan *likeResolver, error) {
	src := r.bus.Subscribe(ctx, event.TopicLikeAdded)
	out := make(chan *likeResolver)

	go func() {
		defer close(out)
		for payload := range src {
			like, ok := payload.(blog.Like)
			if !ok || like.PostID != args.PostID {
				continue
			}
			select {
			case out <- &likeResolver{l: like}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *Resolver) CommentAdded(ctx context.Context, args postIDArgs) (<-chan *commentResolver, error) {
	return r.commentStream(ctx, event.TopicCommentAdded, args.PostID), nil
}

func (r *Resolver) CommentUpdated(ctx context.Context, args postIDArgs) (<-chan *commentResolver, error) {
	return r.commentStream(ctx, event.TopicCommentUpdated, args.PostID), nil
}

func (r *Resolver) CommentDeleted(ctx context.Context, args postIDArgs) (<-chan *commentResolver, error) {
	return r.commentStream(ctx, event.TopicCommentDeleted, args.PostID), nil
}

func (r *Resolver) commentStream(ctx context.Context, topic event.Topic, postID string) <-chan *commentResolver {
	src := r.bus.Subscribe(ctx, topic)
	out := make(chan *commentResolver)

	go func() {
		defer close(out)
		for payload := range src {
			comment, ok := payload.(blog.Comment)
			if !ok || comment.PostID != postID {
				continue
			}
			select {
			case out <- &commentResolver{root: r, c: comment}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
