package graph

import (
	"context"
	"errors"

	"github.com/Kr0n4k/blog-project/internal/user"
)

type createUserInput struct {
	UserName  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Data createUserInput }) (*userResolver, error) {
	u, err := r.users.Create(ctx, user.CreateParams{
		UserName:  args.Data.UserName,
		Email:     args.Data.Email,
		Password:  args.Data.Password,
		FirstName: args.Data.FirstName,
		LastName:  args.Data.LastName,
	})
	if err != nil {
		return nil, err
	}

	return &userResolver{u: u.Public()}, nil
}

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	userID, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}

	u, err := r.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &userResolver{u: u.Public()}, nil
}

func (r *Resolver) FindUserByID(ctx context.Context, args struct{ ID string }) (*userResolver, error) {
	u, err := r.users.FindByID(ctx, args.ID)
	if errors.Is(err, user.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &userResolver{u: u.Public()}, nil
}

func (r *Resolver) GetAllUsers(ctx context.Context) ([]*userResolver, error) {
	users, err := r.users.All(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*userResolver, 0, len(users))
	for _, u := range users {
		resolvers = append(resolvers, &userResolver{u: u.Public()})
	}
	return resolvers, nil
}

func (r *Resolver) SearchUsers(ctx context.Context, args struct {
	Query  string
	Limit  *int32
	Offset *int32
}) ([]*userResolver, error) {
	users, err := r.users.Search(ctx, args.Query, intOr(args.Limit, 10), intOr(args.Offset, 0))
	if err != nil {
		return nil, err
	}

	resolvers := make([]*userResolver, 0, len(users))
	for _, u := range users {
		resolvers = append(resolvers, &userResolver{u: u.Public()})
	}
	return resolvers, nil
}

func (r *Resolver) UpdateProfile(ctx context.Context, args struct {
	Bio    *string
	Avatar *string
}) (*userResolver, error) {
	userID, err := r.viewer(ctx)
	if err != nil {
		return nil, err
	}

	u, err := r.users.UpdateProfile(ctx, userID, args.Bio, args.Avatar)
	if err != nil {
		return nil, err
	}
	return &userResolver{u: u.Public()}, nil
}

func intOr(v *int32, def int) int {
	if v == nil {
		return def
	}
	return int(*v)
}
