package graph

import (
	"context"

	"github.com/Kr0n4k/blog-project/internal/session"
)

type loginInput struct {
	Login    string
	Password string
}

func (r *Resolver) Login(ctx context.Context, args struct{ Data loginInput }) (*authResolver, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	result, err := r.sessions.Login(ctx, conn, session.LoginInput{
		Login:    args.Data.Login,
		Password: args.Data.Password,
	})
	if err != nil {
		return nil, err
	}

	return &authResolver{result: result}, nil
}

func (r *Resolver) Logout(ctx context.Context) (bool, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return false, err
	}

	if err := r.sessions.Logout(ctx, conn); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) FindCurrentSession(ctx context.Context) (*sessionResolver, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := r.sessions.FindCurrent(ctx, conn)
	if err != nil {
		return nil, err
	}

	return &sessionResolver{s: *sess}, nil
}

func (r *Resolver) FindSessionsByUser(ctx context.Context) ([]*sessionResolver, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := r.sessions.FindByUser(ctx, conn)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*sessionResolver, 0, len(sessions))
	for _, s := range sessions {
		resolvers = append(resolvers, &sessionResolver{s: s})
	}
	return resolvers, nil
}

func (r *Resolver) RemoveSession(ctx context.Context, args struct{ ID string }) (bool, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return false, err
	}

	if err := r.sessions.Remove(ctx, conn, args.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) ClearSessionCookie(ctx context.Context) (bool, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return false, err
	}

	return r.sessions.ClearSession(conn), nil
}
