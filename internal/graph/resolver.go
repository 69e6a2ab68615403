package graph

import (
	"context"
	"errors"

	"github.com/Kr0n4k/blog-project/internal/blog"
	"github.com/Kr0n4k/blog-project/internal/event"
	"github.com/Kr0n4k/blog-project/internal/middleware"
	"github.com/Kr0n4k/blog-project/internal/session"
	"github.com/Kr0n4k/blog-project/internal/user"
)

var errUnauthorized = errors.New("unauthorized")

// UserStore is the slice of user persistence the resolvers need.
type UserStore interface {
	Create(ctx context.Context, p user.CreateParams) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	All(ctx context.Context) ([]user.User, error)
	Search(ctx context.Context, query string, limit, offset int) ([]user.User, error)
	UpdateProfile(ctx context.Context, id string, bio, avatar *string) (*user.User, error)
}

// Resolver is the root resolver. It composes the session service, the
// user store, the blog service and the event bus; the bus instance is the
// process-wide singleton injected at startup.
type Resolver struct {
	sessions *session.Service
	users    UserStore
	blog     *blog.Service
	bus      *event.Bus
}

func NewResolver(sessions *session.Service, users UserStore, blogSvc *blog.Service, bus *event.Bus) *Resolver {
	return &Resolver{
		sessions: sessions,
		users:    users,
		blog:     blogSvc,
		bus:      bus,
	}
}

// conn returns the per-request session carrier placed in the context by
// the session middleware.
func (r *Resolver) conn(ctx context.Context) (*session.Conn, error) {
	conn, ok := middleware.ConnFromContext(ctx)
	if !ok {
		return nil, errUnauthorized
	}
	return conn, nil
}

// viewer returns the authenticated user's id, or errUnauthorized.
func (r *Resolver) viewer(ctx context.Context) (string, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return "", err
	}
	if !conn.Record.Authenticated() {
		return "", errUnauthorized
	}
	return conn.Record.UserID, nil
}
