package postgre

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"admin-srv/internal/identity/repository"
	"admin-srv/internal/model"
)

// CreateAccount - Insert a new account. Emails are stored lower-cased.
func (r *implRepository) CreateAccount(ctx context.Context, opts repository.CreateAccountOptions) (model.Account, error) {
	now := r.now()
	acc := model.Account{
		ID:           opts.ID,
		Email:        strings.ToLower(strings.TrimSpace(opts.Email)),
		PasswordHash: opts.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.db.ExecContext(ctx, insertAccountQuery, acc.ID, acc.Email, acc.PasswordHash, now)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.Account{}, repository.ErrEmailTaken
		}
		r.l.Errorf(ctx, "identity.repository.postgre.CreateAccount: Failed to insert account: %v", err)
		return model.Account{}, err
	}
	return acc, nil
}

// GetAccountByID - Get account by primary key.
func (r *implRepository) GetAccountByID(ctx context.Context, id string) (model.Account, error) {
	return r.getAccount(ctx, selectAccountByIDQuery, id)
}

// GetAccountByEmail - Get account by its lower-cased email.
func (r *implRepository) GetAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	return r.getAccount(ctx, selectAccountByEmail, strings.ToLower(strings.TrimSpace(email)))
}

func (r *implRepository) getAccount(ctx context.Context, query string, arg string) (model.Account, error) {
	var acc model.Account
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&acc.ID, &acc.Email, &acc.PasswordHash, &acc.CreatedAt, &acc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, repository.ErrAccountNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "identity.repository.postgre.getAccount: Failed to get account: %v", err)
		return model.Account{}, err
	}
	return acc, nil
}

// UpdatePassword - Replace the password hash of an account.
func (r *implRepository) UpdatePassword(ctx context.Context, opts repository.UpdatePasswordOptions) error {
	res, err := r.db.ExecContext(ctx, updatePasswordQuery, opts.AccountID, opts.PasswordHash, r.now())
	if err != nil {
		r.l.Errorf(ctx, "identity.repository.postgre.UpdatePassword: Failed to update password: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrAccountNotFound
	}
	return nil
}

// DeleteAccount - Remove an account by primary key.
func (r *implRepository) DeleteAccount(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteAccountQuery, id); err != nil {
		r.l.Errorf(ctx, "identity.repository.postgre.DeleteAccount: Failed to delete account: %v", err)
		return err
	}
	return nil
}
