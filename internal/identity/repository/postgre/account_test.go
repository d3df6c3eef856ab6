package postgre

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"admin-srv/internal/identity/repository"
	"admin-srv/pkg/log"
)

// newMockDB creates a sqlmock database with automatic cleanup and expectation checking.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func newTestRepo(db *sql.DB, now time.Time) *implRepository {
	return &implRepository{db: db, l: log.NewNop(), now: func() time.Time { return now }}
}

var accountRowColumns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

func TestCreateAccount(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	t.Run("lower-cases email", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := newTestRepo(db, now)
		mock.ExpectExec(regexp.QuoteMeta(insertAccountQuery)).
			WithArgs("a1", "alice@x.com", "hash", now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		acc, err := r.CreateAccount(context.Background(), repository.CreateAccountOptions{
			ID: "a1", Email: " Alice@X.com ", PasswordHash: "hash",
		})
		if err != nil {
			t.Fatalf("CreateAccount: %v", err)
		}
		if acc.Email != "alice@x.com" || !acc.CreatedAt.Equal(now) {
			t.Errorf("CreateAccount = %+v", acc)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := newTestRepo(db, now)
		mock.ExpectExec(regexp.QuoteMeta(insertAccountQuery)).
			WillReturnError(&pq.Error{Code: uniqueViolation})

		_, err := r.CreateAccount(context.Background(), repository.CreateAccountOptions{ID: "a1", Email: "alice@x.com"})
		if !errors.Is(err, repository.ErrEmailTaken) {
			t.Fatalf("err = %v, want ErrEmailTaken", err)
		}
	})
}

func TestGetAccountByEmail(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := newTestRepo(db, now)
		mock.ExpectQuery(regexp.QuoteMeta(selectAccountByEmail)).
			WithArgs("alice@x.com").
			WillReturnRows(sqlmock.NewRows(accountRowColumns).AddRow("a1", "alice@x.com", "hash", now, now))

		acc, err := r.GetAccountByEmail(context.Background(), "ALICE@x.com")
		if err != nil {
			t.Fatalf("GetAccountByEmail: %v", err)
		}
		if acc.ID != "a1" || acc.PasswordHash != "hash" {
			t.Errorf("GetAccountByEmail = %+v", acc)
		}
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := newTestRepo(db, now)
		mock.ExpectQuery(regexp.QuoteMeta(selectAccountByEmail)).
			WithArgs("bob@x.com").
			WillReturnRows(sqlmock.NewRows(accountRowColumns))

		_, err := r.GetAccountByEmail(context.Background(), "bob@x.com")
		if !errors.Is(err, repository.ErrAccountNotFound) {
			t.Fatalf("err = %v, want ErrAccountNotFound", err)
		}
	})
}

func TestUpdatePassword(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	db, mock := newMockDB(t)
	r := newTestRepo(db, now)

	mock.ExpectExec(regexp.QuoteMeta(updatePasswordQuery)).
		WithArgs("a1", "newhash", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(updatePasswordQuery)).
		WithArgs("missing", "newhash", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := r.UpdatePassword(context.Background(), repository.UpdatePasswordOptions{AccountID: "a1", PasswordHash: "newhash"}); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	err := r.UpdatePassword(context.Background(), repository.UpdatePasswordOptions{AccountID: "missing", PasswordHash: "newhash"})
	if !errors.Is(err, repository.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	db, mock := newMockDB(t)
	r := newTestRepo(db, time.Now())

	mock.ExpectExec(regexp.QuoteMeta(deleteAccountQuery)).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteAccountQuery)).
		WithArgs("a2").
		WillReturnError(sql.ErrConnDone)

	if err := r.DeleteAccount(context.Background(), "a1"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if err := r.DeleteAccount(context.Background(), "a2"); !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("err = %v, want sql.ErrConnDone", err)
	}
}
