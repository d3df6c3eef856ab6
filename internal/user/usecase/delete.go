package usecase

import (
	"context"
	"errors"

	"admin-srv/internal/audit"
	"admin-srv/internal/docstore"
	"admin-srv/internal/model"
	"admin-srv/internal/user"
)

// Delete removes the profile document. The identity account is kept, so the
// user can no longer sign in to the console but can be re-attached by uid.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if id == sc.UserID {
		return user.ErrCannotDeleteSelf
	}
	if err := uc.store.Delete(ctx, model.CollectionUsers, id); err != nil {
		uc.l.Errorf(ctx, "user.usecase.Delete: Failed to delete user %s: %v", id, err)
		return err
	}
	uc.record(ctx, sc, audit.ActionDelete, id)
	return nil
}

// SendPasswordReset mails a reset link to the email of user id.
func (uc *implUseCase) SendPasswordReset(ctx context.Context, id string) error {
	u, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	return uc.identity.SendPasswordReset(ctx, u.Email)
}

func (uc *implUseCase) get(ctx context.Context, id string) (model.User, error) {
	doc, err := uc.store.Get(ctx, model.CollectionUsers, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.get: Failed to get user %s: %v", id, err)
		return model.User{}, err
	}
	return model.NewUserFromDocument(doc), nil
}

func (uc *implUseCase) record(ctx context.Context, sc model.Scope, action, id string) {
	uc.audit.Record(ctx, audit.Event{
		Action:     action,
		Collection: model.CollectionUsers,
		DocumentID: id,
		ActorID:    sc.UserID,
		OccurredAt: uc.now(),
	})
}
