package usecase

import (
	"context"
	"errors"

	"admin-srv/internal/docstore"
	"admin-srv/internal/identity"
	"admin-srv/internal/identity/repository"
	"admin-srv/internal/mailer"
	"admin-srv/internal/model"
	"admin-srv/pkg/util"
)

// SendPasswordReset mails a single use reset link to email. Unknown emails
// succeed silently.
func (uc *implUseCase) SendPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if util.IsEmail(email) != nil {
		return identity.ErrInvalidEmail
	}

	acc, err := uc.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			uc.l.Debugf(ctx, "identity.usecase.SendPasswordReset: no account for %s", email)
			return nil
		}
		uc.l.Errorf(ctx, "identity.usecase.SendPasswordReset: Failed to get account: %v", err)
		return err
	}

	code, err := uc.resetCode()
	if err != nil {
		uc.l.Errorf(ctx, "identity.usecase.SendPasswordReset: Failed to generate code: %v", err)
		return err
	}
	if err := uc.tokens.SaveResetCode(ctx, code, acc.ID, uc.cfg.ResetCodeTTL); err != nil {
		return err
	}

	return uc.mailer.SendResetPassword(ctx, mailer.SendResetPasswordInput{
		Email: acc.Email,
		Name:  uc.displayName(ctx, acc),
		Code:  code,
	})
}

// ConfirmPasswordReset consumes the reset code and sets the new password.
func (uc *implUseCase) ConfirmPasswordReset(ctx context.Context, input identity.ConfirmPasswordResetInput) error {
	if util.IsPassword(input.NewPassword) != nil {
		return identity.ErrWeakPassword
	}

	accountID, err := uc.tokens.ConsumeResetCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, repository.ErrResetCodeNotFound) {
			return identity.ErrInvalidResetCode
		}
		return err
	}
	return uc.setPassword(ctx, accountID, input.NewPassword)
}

// ChangePassword re-authenticates the caller, sets the new password and
// revokes the token the request was made with.
func (uc *implUseCase) ChangePassword(ctx context.Context, sc model.Scope, input identity.ChangePasswordInput) error {
	if util.IsPassword(input.NewPassword) != nil {
		return identity.ErrWeakPassword
	}

	acc, err := uc.GetAccount(ctx, sc.UserID)
	if err != nil {
		return err
	}
	if !uc.enc.CheckPasswordHash(input.CurrentPassword, acc.PasswordHash) {
		return identity.ErrWrongPassword
	}

	if err := uc.setPassword(ctx, acc.ID, input.NewPassword); err != nil {
		return err
	}
	return uc.revoke(ctx, sc)
}

func (uc *implUseCase) setPassword(ctx context.Context, accountID, password string) error {
	hash, err := uc.enc.HashPassword(password)
	if err != nil {
		uc.l.Errorf(ctx, "identity.usecase.setPassword: Failed to hash password: %v", err)
		return err
	}

	err = uc.accounts.UpdatePassword(ctx, repository.UpdatePasswordOptions{
		AccountID:    accountID,
		PasswordHash: hash,
	})
	if errors.Is(err, repository.ErrAccountNotFound) {
		return identity.ErrAccountNotFound
	}
	return err
}

// displayName prefers the profile name and falls back to the email.
func (uc *implUseCase) displayName(ctx context.Context, acc model.Account) string {
	doc, err := uc.store.Get(ctx, model.CollectionUsers, acc.ID)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			uc.l.Warnf(ctx, "identity.usecase.displayName: Failed to get profile: %v", err)
		}
		return acc.Email
	}
	if name := model.NewUserFromDocument(doc).FullName(); name != "" {
		return name
	}
	return acc.Email
}
