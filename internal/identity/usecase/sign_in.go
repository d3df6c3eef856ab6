package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"admin-srv/internal/docstore"
	"admin-srv/internal/identity"
	"admin-srv/internal/identity/repository"
	"admin-srv/internal/model"
	"admin-srv/pkg/scope"
	"admin-srv/pkg/util"
)

// SignIn checks the credentials and issues a bearer token. Only accounts that
// own a Users profile document may sign in to the console.
func (uc *implUseCase) SignIn(ctx context.Context, input identity.SignInInput) (identity.SignInOutput, error) {
	email := normalizeEmail(input.Email)
	if util.IsEmail(email) != nil || input.Password == "" {
		return identity.SignInOutput{}, identity.ErrInvalidCredentials
	}

	acc, err := uc.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return identity.SignInOutput{}, identity.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "identity.usecase.SignIn: Failed to get account: %v", err)
		return identity.SignInOutput{}, err
	}
	if !uc.enc.CheckPasswordHash(input.Password, acc.PasswordHash) {
		return identity.SignInOutput{}, identity.ErrInvalidCredentials
	}

	doc, err := uc.store.Get(ctx, model.CollectionUsers, acc.ID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return identity.SignInOutput{}, identity.ErrProfileNotFound
		}
		uc.l.Errorf(ctx, "identity.usecase.SignIn: Failed to get profile: %v", err)
		return identity.SignInOutput{}, err
	}

	expiresAt := uc.now().Add(uc.jwt.TTL())
	token, err := uc.jwt.CreateToken(scope.Payload{
		UserID:    acc.ID,
		Email:     acc.Email,
		IssuedAt:  uc.now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "identity.usecase.SignIn: Failed to create token: %v", err)
		return identity.SignInOutput{}, err
	}

	return identity.SignInOutput{
		Token:     token,
		ExpiresAt: time.Unix(expiresAt.Unix(), 0),
		User:      model.NewUserFromDocument(doc),
	}, nil
}

// SignOut revokes the token of sc until it would have expired anyway.
func (uc *implUseCase) SignOut(ctx context.Context, sc model.Scope) error {
	return uc.revoke(ctx, sc)
}

func (uc *implUseCase) VerifyToken(ctx context.Context, token string) (scope.Payload, error) {
	payload, err := uc.jwt.Verify(token)
	if err != nil {
		return scope.Payload{}, identity.ErrInvalidToken
	}
	if payload.TokenID == "" {
		return payload, nil
	}

	revoked, err := uc.tokens.IsTokenRevoked(ctx, payload.TokenID)
	if err != nil {
		uc.l.Errorf(ctx, "identity.usecase.VerifyToken: Failed to check revocation: %v", err)
		return scope.Payload{}, err
	}
	if revoked {
		return scope.Payload{}, identity.ErrTokenRevoked
	}
	return payload, nil
}

func (uc *implUseCase) revoke(ctx context.Context, sc model.Scope) error {
	if sc.TokenID == "" {
		return nil
	}
	ttl := time.Unix(sc.ExpiresAt, 0).Sub(uc.now())
	if err := uc.tokens.RevokeToken(ctx, sc.TokenID, ttl); err != nil {
		uc.l.Errorf(ctx, "identity.usecase.revoke: Failed to revoke token: %v", err)
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
