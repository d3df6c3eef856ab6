package repository

import (
	"context"
	"time"

	"admin-srv/internal/model"
)

// AccountRepository stores console accounts.
//
//go:generate mockery --name AccountRepository
type AccountRepository interface {
	CreateAccount(ctx context.Context, opts CreateAccountOptions) (model.Account, error)
	GetAccountByID(ctx context.Context, id string) (model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (model.Account, error)
	UpdatePassword(ctx context.Context, opts UpdatePasswordOptions) error
	// DeleteAccount removes an account. Deleting a missing account is not an error.
	DeleteAccount(ctx context.Context, id string) error
}

// TokenRepository keeps short lived auth state: revoked token ids and
// password reset codes.
//
//go:generate mockery --name TokenRepository
type TokenRepository interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	SaveResetCode(ctx context.Context, code, accountID string, ttl time.Duration) error
	// ConsumeResetCode returns the account of code and deletes it.
	ConsumeResetCode(ctx context.Context, code string) (string, error)
}
