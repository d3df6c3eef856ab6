package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"admin-srv/internal/docstore"
	"admin-srv/internal/docstore/memory"
	"admin-srv/internal/identity"
	"admin-srv/internal/identity/repository"
	"admin-srv/internal/mailer"
	"admin-srv/internal/model"
	"admin-srv/pkg/encrypter"
	"admin-srv/pkg/jwt"
	"admin-srv/pkg/log"
	"admin-srv/pkg/scope"
)

type fakeAccounts struct {
	byID map[string]model.Account
}

func (f *fakeAccounts) CreateAccount(ctx context.Context, opts repository.CreateAccountOptions) (model.Account, error) {
	for _, acc := range f.byID {
		if acc.Email == opts.Email {
			return model.Account{}, repository.ErrEmailTaken
		}
	}
	acc := model.Account{ID: opts.ID, Email: opts.Email, PasswordHash: opts.PasswordHash}
	f.byID[acc.ID] = acc
	return acc, nil
}

func (f *fakeAccounts) GetAccountByID(ctx context.Context, id string) (model.Account, error) {
	acc, ok := f.byID[id]
	if !ok {
		return model.Account{}, repository.ErrAccountNotFound
	}
	return acc, nil
}

func (f *fakeAccounts) GetAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	for _, acc := range f.byID {
		if acc.Email == email {
			return acc, nil
		}
	}
	return model.Account{}, repository.ErrAccountNotFound
}

func (f *fakeAccounts) DeleteAccount(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeAccounts) UpdatePassword(ctx context.Context, opts repository.UpdatePasswordOptions) error {
	acc, ok := f.byID[opts.AccountID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	acc.PasswordHash = opts.PasswordHash
	f.byID[acc.ID] = acc
	return nil
}

type fakeTokens struct {
	revoked map[string]time.Duration
	codes   map[string]string
}

func (f *fakeTokens) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	f.revoked[tokenID] = ttl
	return nil
}

func (f *fakeTokens) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := f.revoked[tokenID]
	return ok, nil
}

func (f *fakeTokens) SaveResetCode(ctx context.Context, code, accountID string, ttl time.Duration) error {
	f.codes[code] = accountID
	return nil
}

func (f *fakeTokens) ConsumeResetCode(ctx context.Context, code string) (string, error) {
	id, ok := f.codes[code]
	if !ok {
		return "", repository.ErrResetCodeNotFound
	}
	delete(f.codes, code)
	return id, nil
}

type fakeMailer struct {
	sent []mailer.SendResetPasswordInput
}

func (f *fakeMailer) SendResetPassword(ctx context.Context, input mailer.SendResetPasswordInput) error {
	f.sent = append(f.sent, input)
	return nil
}

type testEnv struct {
	uc       *implUseCase
	accounts *fakeAccounts
	tokens   *fakeTokens
	mailer   *fakeMailer
	store    docstore.Store
}

const testPassword = "Secret123"

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	jwtManager, err := jwt.New(jwt.Config{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Issuer:    "admin-srv",
		TTL:       time.Hour,
	})
	require.NoError(t, err)

	enc := encrypter.NewWithCost("test-secret", bcrypt.MinCost)
	hash, err := enc.HashPassword(testPassword)
	require.NoError(t, err)

	env := testEnv{
		accounts: &fakeAccounts{byID: map[string]model.Account{
			"a1": {ID: "a1", Email: "alice@x.com", PasswordHash: hash},
			"a2": {ID: "a2", Email: "nobody@x.com", PasswordHash: hash},
		}},
		tokens: &fakeTokens{revoked: map[string]time.Duration{}, codes: map[string]string{}},
		mailer: &fakeMailer{},
		store:  memory.New(),
	}
	require.NoError(t, env.store.Set(context.Background(), model.CollectionUsers, "a1", model.User{
		Email: "alice@x.com", FirstName: "Alice", LastName: "Nguyen", UserName: "alice",
	}.Fields()))

	env.uc = &implUseCase{
		l:         log.NewNop(),
		accounts:  env.accounts,
		tokens:    env.tokens,
		jwt:       jwtManager,
		enc:       enc,
		store:     env.store,
		mailer:    env.mailer,
		cfg:       Config{ResetCodeTTL: DefaultResetCodeTTL},
		now:       time.Now,
		resetCode: func() (string, error) { return "fixedcode", nil },
	}
	return env
}

func TestSignIn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		out, err := env.uc.SignIn(ctx, identity.SignInInput{Email: "  ALICE@x.com ", Password: testPassword})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, "a1", out.User.ID)
		assert.Equal(t, "Alice", out.User.FirstName)
		assert.True(t, out.ExpiresAt.After(time.Now()))

		payload, err := env.uc.VerifyToken(ctx, out.Token)
		require.NoError(t, err)
		assert.Equal(t, "a1", payload.UserID)
		assert.Equal(t, "alice@x.com", payload.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.uc.SignIn(ctx, identity.SignInInput{Email: "alice@x.com", Password: "Wrong1234"})
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.uc.SignIn(ctx, identity.SignInInput{Email: "bob@x.com", Password: testPassword})
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("no profile", func(t *testing.T) {
		_, err := env.uc.SignIn(ctx, identity.SignInInput{Email: "nobody@x.com", Password: testPassword})
		assert.ErrorIs(t, err, identity.ErrProfileNotFound)
	})
}

func TestSignOutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.uc.SignIn(ctx, identity.SignInInput{Email: "alice@x.com", Password: testPassword})
	require.NoError(t, err)
	payload, err := env.uc.VerifyToken(ctx, out.Token)
	require.NoError(t, err)

	require.NoError(t, env.uc.SignOut(ctx, scope.NewScope(payload)))
	assert.Greater(t, env.tokens.revoked[payload.TokenID], time.Duration(0))

	_, err = env.uc.VerifyToken(ctx, out.Token)
	assert.ErrorIs(t, err, identity.ErrTokenRevoked)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.uc.VerifyToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestPasswordReset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("unknown email is silent", func(t *testing.T) {
		require.NoError(t, env.uc.SendPasswordReset(ctx, "bob@x.com"))
		assert.Empty(t, env.mailer.sent)
	})

	t.Run("invalid email", func(t *testing.T) {
		assert.ErrorIs(t, env.uc.SendPasswordReset(ctx, "bob"), identity.ErrInvalidEmail)
	})

	t.Run("send then confirm once", func(t *testing.T) {
		require.NoError(t, env.uc.SendPasswordReset(ctx, "Alice@X.com"))
		require.Len(t, env.mailer.sent, 1)
		assert.Equal(t, mailer.SendResetPasswordInput{Email: "alice@x.com", Name: "Alice Nguyen", Code: "fixedcode"}, env.mailer.sent[0])

		err := env.uc.ConfirmPasswordReset(ctx, identity.ConfirmPasswordResetInput{Code: "fixedcode", NewPassword: "short"})
		assert.ErrorIs(t, err, identity.ErrWeakPassword)

		require.NoError(t, env.uc.ConfirmPasswordReset(ctx, identity.ConfirmPasswordResetInput{Code: "fixedcode", NewPassword: "NewPass123"}))
		_, err = env.uc.SignIn(ctx, identity.SignInInput{Email: "alice@x.com", Password: "NewPass123"})
		assert.NoError(t, err)

		err = env.uc.ConfirmPasswordReset(ctx, identity.ConfirmPasswordResetInput{Code: "fixedcode", NewPassword: "NewPass456"})
		assert.ErrorIs(t, err, identity.ErrInvalidResetCode)
	})

	t.Run("profile-less account falls back to email", func(t *testing.T) {
		env.mailer.sent = nil
		require.NoError(t, env.uc.SendPasswordReset(ctx, "nobody@x.com"))
		require.Len(t, env.mailer.sent, 1)
		assert.Equal(t, "nobody@x.com", env.mailer.sent[0].Name)
	})
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	sc := model.Scope{UserID: "a1", TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour).Unix()}

	err := env.uc.ChangePassword(ctx, sc, identity.ChangePasswordInput{CurrentPassword: "Wrong1234", NewPassword: "NewPass123"})
	assert.ErrorIs(t, err, identity.ErrWrongPassword)

	err = env.uc.ChangePassword(ctx, sc, identity.ChangePasswordInput{CurrentPassword: testPassword, NewPassword: "nodigits"})
	assert.ErrorIs(t, err, identity.ErrWeakPassword)

	require.NoError(t, env.uc.ChangePassword(ctx, sc, identity.ChangePasswordInput{CurrentPassword: testPassword, NewPassword: "NewPass123"}))
	assert.Contains(t, env.tokens.revoked, "jti-1")

	_, err = env.uc.SignIn(ctx, identity.SignInInput{Email: "alice@x.com", Password: testPassword})
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestCreateAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	acc, err := env.uc.CreateAccount(ctx, identity.CreateAccountInput{Email: " Carol@X.com", Password: "Carol1234"})
	require.NoError(t, err)
	assert.Equal(t, "carol@x.com", acc.Email)
	assert.NotEmpty(t, acc.ID)

	got, err := env.uc.GetAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, acc.Email, got.Email)

	_, err = env.uc.CreateAccount(ctx, identity.CreateAccountInput{Email: "carol@x.com", Password: "Carol1234"})
	assert.ErrorIs(t, err, identity.ErrEmailTaken)

	_, err = env.uc.CreateAccount(ctx, identity.CreateAccountInput{Email: "dave@x.com", Password: "weak"})
	assert.ErrorIs(t, err, identity.ErrWeakPassword)

	_, err = env.uc.GetAccount(ctx, "missing")
	assert.ErrorIs(t, err, identity.ErrAccountNotFound)
}

func TestDeleteAccountFreesEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	acc, err := env.uc.CreateAccount(ctx, identity.CreateAccountInput{Email: "erin@x.com", Password: "Erin12345"})
	require.NoError(t, err)

	require.NoError(t, env.uc.DeleteAccount(ctx, acc.ID))
	_, err = env.uc.GetAccount(ctx, acc.ID)
	assert.ErrorIs(t, err, identity.ErrAccountNotFound)

	_, err = env.uc.CreateAccount(ctx, identity.CreateAccountInput{Email: "erin@x.com", Password: "Erin12345"})
	assert.NoError(t, err)
}
