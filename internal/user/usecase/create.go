package usecase

import (
	"context"
	"errors"
	"strings"

	"admin-srv/internal/audit"
	"admin-srv/internal/docstore"
	"admin-srv/internal/identity"
	"admin-srv/internal/model"
	"admin-srv/internal/user"
	"admin-srv/pkg/util"
)

// Create adds a console user. A manual user gets a new identity account; a
// uid user attaches a profile to an existing account. Both are mailed a
// password reset link. A manual account whose profile cannot be written is
// deleted again.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input user.CreateInput) (model.User, error) {
	if err := validateNames(input.FirstName, input.LastName, input.UserName); err != nil {
		return model.User{}, err
	}

	var acc model.Account
	var err error
	switch input.Type {
	case user.CreateTypeManual:
		password := input.Password
		if password == "" {
			password = user.DefaultPassword
		}
		acc, err = uc.identity.CreateAccount(ctx, identity.CreateAccountInput{Email: input.Email, Password: password})
	case user.CreateTypeUID:
		if strings.TrimSpace(input.UID) == "" {
			return model.User{}, user.ErrUIDRequired
		}
		acc, err = uc.identity.GetAccount(ctx, strings.TrimSpace(input.UID))
		if err == nil {
			err = uc.ensureNoProfile(ctx, acc.ID)
		}
	default:
		return model.User{}, user.ErrInvalidCreateType
	}
	if err != nil {
		return model.User{}, err
	}

	u := model.User{
		ID:        acc.ID,
		Email:     acc.Email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		UserName:  strings.TrimSpace(input.UserName),
		CreatedAt: util.RecordTime(uc.now()),
	}
	if err := uc.store.Set(ctx, model.CollectionUsers, u.ID, u.Fields()); err != nil {
		uc.l.Errorf(ctx, "user.usecase.Create: Failed to write profile: %v", err)
		if input.Type == user.CreateTypeManual {
			if delErr := uc.identity.DeleteAccount(ctx, acc.ID); delErr != nil {
				uc.l.Warnf(ctx, "user.usecase.Create: Failed to remove account %s: %v", acc.ID, delErr)
			}
		}
		return model.User{}, err
	}
	uc.record(ctx, sc, audit.ActionCreate, u.ID)

	if err := uc.identity.SendPasswordReset(ctx, u.Email); err != nil {
		uc.l.Warnf(ctx, "user.usecase.Create: Failed to send reset mail to %s: %v", u.Email, err)
	}
	return u, nil
}

func (uc *implUseCase) ensureNoProfile(ctx context.Context, id string) error {
	_, err := uc.store.Get(ctx, model.CollectionUsers, id)
	switch {
	case err == nil:
		return user.ErrUserExists
	case errors.Is(err, docstore.ErrNotFound):
		return nil
	default:
		uc.l.Errorf(ctx, "user.usecase.ensureNoProfile: Failed to get profile: %v", err)
		return err
	}
}

func validateNames(firstName, lastName, userName string) error {
	if util.IsName(strings.TrimSpace(firstName)) != nil || util.IsName(strings.TrimSpace(lastName)) != nil {
		return user.ErrInvalidName
	}
	if userName != "" && util.IsUsername(strings.TrimSpace(userName)) != nil {
		return user.ErrInvalidUserName
	}
	return nil
}
