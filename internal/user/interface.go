package user

import (
	"context"

	"admin-srv/internal/model"
	"admin-srv/internal/query"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (query.Page, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.User, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	SendPasswordReset(ctx context.Context, id string) error

	GetProfile(ctx context.Context, sc model.Scope) (model.User, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (model.User, error)
}
