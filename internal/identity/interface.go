package identity

import (
	"context"

	"admin-srv/internal/model"
	"admin-srv/pkg/scope"
)

//go:generate mockery --name UseCase
type UseCase interface {
	SignIn(ctx context.Context, input SignInInput) (SignInOutput, error)
	SignOut(ctx context.Context, sc model.Scope) error
	// VerifyToken checks the signature, expiry and revocation state of token.
	VerifyToken(ctx context.Context, token string) (scope.Payload, error)

	SendPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, input ConfirmPasswordResetInput) error
	ChangePassword(ctx context.Context, sc model.Scope, input ChangePasswordInput) error

	CreateAccount(ctx context.Context, input CreateAccountInput) (model.Account, error)
	GetAccount(ctx context.Context, id string) (model.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}
