package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"admin-srv/internal/audit"
	"admin-srv/internal/docstore"
	"admin-srv/internal/docstore/memory"
	storeMocks "admin-srv/internal/docstore/mocks"
	"admin-srv/internal/identity"
	"admin-srv/internal/model"
	"admin-srv/internal/query"
	queryUC "admin-srv/internal/query/usecase"
	"admin-srv/internal/user"
	"admin-srv/pkg/encrypter"
	"admin-srv/pkg/log"
	"admin-srv/pkg/util"
)

type fakeIdentity struct {
	identity.UseCase
	accounts map[string]model.Account
	created  []identity.CreateAccountInput
	resets   []string
	deleted  []string
}

func (f *fakeIdentity) CreateAccount(ctx context.Context, input identity.CreateAccountInput) (model.Account, error) {
	f.created = append(f.created, input)
	acc := model.Account{ID: "new-" + input.Email, Email: input.Email}
	f.accounts[acc.ID] = acc
	return acc, nil
}

func (f *fakeIdentity) GetAccount(ctx context.Context, id string) (model.Account, error) {
	acc, ok := f.accounts[id]
	if !ok {
		return model.Account{}, identity.ErrAccountNotFound
	}
	return acc, nil
}

func (f *fakeIdentity) DeleteAccount(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.accounts, id)
	return nil
}

func (f *fakeIdentity) SendPasswordReset(ctx context.Context, email string) error {
	f.resets = append(f.resets, email)
	return nil
}

type fakeAudit struct {
	events []audit.Event
}

func (f *fakeAudit) Record(ctx context.Context, e audit.Event) {
	f.events = append(f.events, e)
}

type testEnv struct {
	uc       *implUseCase
	store    docstore.Store
	identity *fakeIdentity
	audit    *fakeAudit
}

var fixedNow = time.Date(2026, 10, 19, 14, 5, 9, 0, time.UTC)

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	l := log.NewNop()
	store := memory.New()
	ctx := context.Background()
	for id, email := range map[string]string{"u1": "alice@x.com", "u2": "bob@x.com", "u3": "alicia@x.com"} {
		require.NoError(t, store.Set(ctx, model.CollectionUsers, id, model.User{
			Email: email, FirstName: "Test", LastName: "User",
		}.Fields()))
	}

	env := testEnv{
		store: store,
		identity: &fakeIdentity{accounts: map[string]model.Account{
			"acc-9": {ID: "acc-9", Email: "carol@x.com"},
			"u1":    {ID: "u1", Email: "alice@x.com"},
		}},
		audit: &fakeAudit{},
	}
	env.uc = &implUseCase{
		l:        l,
		store:    store,
		queryUC:  queryUC.New(store, encrypter.New("user-test-secret"), l),
		identity: env.identity,
		audit:    env.audit,
		now:      func() time.Time { return fixedNow },
	}
	return env
}

func ids(page query.Page) []string {
	out := make([]string, 0, len(page.Data))
	for _, d := range page.Data {
		out = append(out, d.ID)
	}
	return out
}

func TestList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("default order is email desc", func(t *testing.T) {
		page, err := env.uc.List(ctx, user.ListInput{Pagination: query.Pagination{PageSize: 10}, Generation: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"u2", "u3", "u1"}, ids(page))
		assert.Equal(t, int64(3), page.TotalCount)
		assert.Equal(t, int64(3), page.Generation)
	})

	t.Run("search by email prefix", func(t *testing.T) {
		page, err := env.uc.List(ctx, user.ListInput{Pagination: query.Pagination{PageSize: 10}, Search: "ali"})
		require.NoError(t, err)
		assert.Equal(t, []string{"u3", "u1"}, ids(page))
		assert.Equal(t, int64(2), page.TotalCount)
	})

	t.Run("pages with cursor", func(t *testing.T) {
		first, err := env.uc.List(ctx, user.ListInput{Pagination: query.Pagination{PageSize: 2}})
		require.NoError(t, err)
		require.NotNil(t, first.LastVisible)
		assert.Equal(t, []string{"u2", "u3"}, ids(first))

		second, err := env.uc.List(ctx, user.ListInput{Pagination: query.Pagination{PageSize: 2, LastVisible: *first.LastVisible}})
		require.NoError(t, err)
		assert.Equal(t, []string{"u1"}, ids(second))
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("manual uses default password", func(t *testing.T) {
		env := newTestEnv(t)
		u, err := env.uc.Create(ctx, sc, user.CreateInput{
			Type: user.CreateTypeManual, Email: "dave@x.com", FirstName: "Dave", LastName: "O'Neil",
		})
		require.NoError(t, err)
		assert.Equal(t, user.DefaultPassword, env.identity.created[0].Password)
		assert.Equal(t, util.RecordTime(fixedNow), u.CreatedAt)
		assert.Equal(t, []string{"dave@x.com"}, env.identity.resets)

		doc, err := env.store.Get(ctx, model.CollectionUsers, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "O'Neil", model.NewUserFromDocument(doc).LastName)

		require.Len(t, env.audit.events, 1)
		assert.Equal(t, audit.ActionCreate, env.audit.events[0].Action)
		assert.Equal(t, "u1", env.audit.events[0].ActorID)
	})

	t.Run("uid attaches profile", func(t *testing.T) {
		env := newTestEnv(t)
		u, err := env.uc.Create(ctx, sc, user.CreateInput{Type: user.CreateTypeUID, UID: "acc-9", FirstName: "Carol", LastName: "Tran"})
		require.NoError(t, err)
		assert.Equal(t, "carol@x.com", u.Email)
		assert.Empty(t, env.identity.created)
	})

	t.Run("manual removes account when profile write fails", func(t *testing.T) {
		env := newTestEnv(t)
		store := storeMocks.NewStore(t)
		env.uc.store = store
		store.On("Set", ctx, model.CollectionUsers, "new-erin@x.com", mock.Anything).Return(docstore.ErrUnavailable).Once()

		_, err := env.uc.Create(ctx, sc, user.CreateInput{Type: user.CreateTypeManual, Email: "erin@x.com", FirstName: "Erin", LastName: "Le"})
		require.ErrorIs(t, err, docstore.ErrUnavailable)
		assert.Equal(t, []string{"new-erin@x.com"}, env.identity.deleted)
		assert.NotContains(t, env.identity.accounts, "new-erin@x.com")
		assert.Empty(t, env.identity.resets)
		assert.Empty(t, env.audit.events)
	})

	t.Run("uid keeps account when profile write fails", func(t *testing.T) {
		env := newTestEnv(t)
		store := storeMocks.NewStore(t)
		env.uc.store = store
		store.On("Get", ctx, model.CollectionUsers, "acc-9").Return(docstore.Document{}, docstore.ErrNotFound).Once()
		store.On("Set", ctx, model.CollectionUsers, "acc-9", mock.Anything).Return(docstore.ErrUnavailable).Once()

		_, err := env.uc.Create(ctx, sc, user.CreateInput{Type: user.CreateTypeUID, UID: "acc-9", FirstName: "Carol", LastName: "Tran"})
		require.ErrorIs(t, err, docstore.ErrUnavailable)
		assert.Empty(t, env.identity.deleted)
		assert.Contains(t, env.identity.accounts, "acc-9")
	})

	t.Run("uid with existing profile", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.uc.Create(ctx, sc, user.CreateInput{Type: user.CreateTypeUID, UID: "u1", FirstName: "A", LastName: "B"})
		assert.ErrorIs(t, err, user.ErrUserExists)
	})

	t.Run("uid unknown account", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.uc.Create(ctx, sc, user.CreateInput{Type: user.CreateTypeUID, UID: "nope", FirstName: "A", LastName: "B"})
		assert.ErrorIs(t, err, identity.ErrAccountNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.uc.Create(ctx, sc, user.CreateInput{Type: user.CreateTypeManual, Email: "e@x.com", FirstName: "R2D2", LastName: "B"})
		assert.ErrorIs(t, err, user.ErrInvalidName)

		_, err = env.uc.Create(ctx, sc, user.CreateInput{Type: "import", FirstName: "A", LastName: "B"})
		assert.ErrorIs(t, err, user.ErrInvalidCreateType)

		_, err = env.uc.Create(ctx, sc, user.CreateInput{Type: user.CreateTypeUID, FirstName: "A", LastName: "B"})
		assert.ErrorIs(t, err, user.ErrUIDRequired)
	})
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	assert.ErrorIs(t, env.uc.Delete(ctx, sc, "u1"), user.ErrCannotDeleteSelf)

	require.NoError(t, env.uc.Delete(ctx, sc, "u2"))
	_, err := env.store.Get(ctx, model.CollectionUsers, "u2")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
	require.Len(t, env.audit.events, 1)
	assert.Equal(t, audit.Event{
		Action: audit.ActionDelete, Collection: model.CollectionUsers, DocumentID: "u2", ActorID: "u1", OccurredAt: fixedNow,
	}, env.audit.events[0])
}

func TestSendPasswordReset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.uc.SendPasswordReset(ctx, "u3"))
	assert.Equal(t, []string{"alicia@x.com"}, env.identity.resets)
	assert.ErrorIs(t, env.uc.SendPasswordReset(ctx, "missing"), user.ErrUserNotFound)
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	u, err := env.uc.UpdateProfile(ctx, sc, user.UpdateProfileInput{FirstName: "Alice", LastName: "Nguyen", UserName: "alice.n"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.FirstName)
	assert.Equal(t, "alice@x.com", u.Email)

	got, err := env.uc.GetProfile(ctx, sc)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = env.uc.UpdateProfile(ctx, sc, user.UpdateProfileInput{FirstName: "Alice", LastName: "N", UserName: "a"})
	assert.ErrorIs(t, err, user.ErrInvalidUserName)

	_, err = env.uc.UpdateProfile(ctx, model.Scope{UserID: "ghost"}, user.UpdateProfileInput{FirstName: "G", LastName: "H"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
