package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"admin-srv/internal/identity"
	"admin-srv/internal/identity/repository"
	"admin-srv/internal/model"
	"admin-srv/pkg/util"
)

func (uc *implUseCase) CreateAccount(ctx context.Context, input identity.CreateAccountInput) (model.Account, error) {
	email := normalizeEmail(input.Email)
	if util.IsEmail(email) != nil {
		return model.Account{}, identity.ErrInvalidEmail
	}
	if util.IsPassword(input.Password) != nil {
		return model.Account{}, identity.ErrWeakPassword
	}

	hash, err := uc.enc.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "identity.usecase.CreateAccount: Failed to hash password: %v", err)
		return model.Account{}, err
	}

	acc, err := uc.accounts.CreateAccount(ctx, repository.CreateAccountOptions{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return model.Account{}, identity.ErrEmailTaken
		}
		return model.Account{}, err
	}
	return acc, nil
}

func (uc *implUseCase) GetAccount(ctx context.Context, id string) (model.Account, error) {
	acc, err := uc.accounts.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return model.Account{}, identity.ErrAccountNotFound
		}
		uc.l.Errorf(ctx, "identity.usecase.GetAccount: Failed to get account: %v", err)
		return model.Account{}, err
	}
	return acc, nil
}

func (uc *implUseCase) DeleteAccount(ctx context.Context, id string) error {
	if err := uc.accounts.DeleteAccount(ctx, id); err != nil {
		uc.l.Errorf(ctx, "identity.usecase.DeleteAccount: Failed to delete account %s: %v", id, err)
		return err
	}
	return nil
}
