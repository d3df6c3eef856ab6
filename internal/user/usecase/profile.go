package usecase

import (
	"context"
	"errors"
	"strings"

	"admin-srv/internal/audit"
	"admin-srv/internal/docstore"
	"admin-srv/internal/model"
	"admin-srv/internal/user"
)

func (uc *implUseCase) GetProfile(ctx context.Context, sc model.Scope) (model.User, error) {
	return uc.get(ctx, sc.UserID)
}

// UpdateProfile changes the names of the signed in user. The email follows
// the identity account and is not editable here.
func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input user.UpdateProfileInput) (model.User, error) {
	if err := validateNames(input.FirstName, input.LastName, input.UserName); err != nil {
		return model.User{}, err
	}

	fields := map[string]any{
		model.UserFieldFirstName: strings.TrimSpace(input.FirstName),
		model.UserFieldLastName:  strings.TrimSpace(input.LastName),
		model.UserFieldUserName:  strings.TrimSpace(input.UserName),
	}
	if err := uc.store.Update(ctx, model.CollectionUsers, sc.UserID, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.UpdateProfile: Failed to update profile: %v", err)
		return model.User{}, err
	}
	uc.record(ctx, sc, audit.ActionUpdate, sc.UserID)

	return uc.get(ctx, sc.UserID)
}
