package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-srv/internal/docstore"
	"admin-srv/internal/docstore/memory"
	"admin-srv/internal/query"
	"admin-srv/pkg/encrypter"
	"admin-srv/pkg/log"
)

const testSecret = "query-usecase-test-secret"

func newTestUseCase(t *testing.T, store docstore.Store) query.UseCase {
	t.Helper()
	return New(store, encrypter.New(testSecret), log.NewNop())
}

func seedContacts(t *testing.T) docstore.Store {
	t.Helper()
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "Contacts", "c1", map[string]any{"email": "alice@x.com", "name": "Alice"}))
	require.NoError(t, s.Set(ctx, "Contacts", "c2", map[string]any{"email": "bob@x.com", "name": "Bob"}))
	require.NoError(t, s.Set(ctx, "Contacts", "c3", map[string]any{"email": "alice2@x.com", "name": "Alice"}))
	return s
}

func seedUsers(t *testing.T, n int) docstore.Store {
	t.Helper()
	s := memory.New()
	for i := 0; i < n; i++ {
		fields := map[string]any{
			"email": fmt.Sprintf("user%02d@x.com", i),
			"role":  []string{"admin", "staff"}[i%2],
			"rank":  i % 5,
		}
		require.NoError(t, s.Set(context.Background(), "Users", fmt.Sprintf("u%02d", i), fields))
	}
	return s
}

func ids(docs []docstore.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

func TestFetchPageContactsSearch(t *testing.T) {
	uc := newTestUseCase(t, seedContacts(t))

	page, err := uc.FetchPage(context.Background(), "Contacts", query.Options{
		Pagination: query.Pagination{PageSize: 10},
		Search:     &query.Search{Field: "email", Value: "alice"},
	})
	require.NoError(t, err)

	// Bytewise order puts '2' (0x32) before '@' (0x40).
	assert.Equal(t, []string{"c3", "c1"}, ids(page.Data))
	assert.Equal(t, int64(2), page.TotalCount)
	require.NotNil(t, page.LastVisible)

	next, err := uc.Page(context.Background(), "Contacts", query.Options{
		Pagination: query.Pagination{PageSize: 10, LastVisible: *page.LastVisible},
		Search:     &query.Search{Field: "email", Value: "alice"},
	})
	require.NoError(t, err)
	assert.Empty(t, next.Data, "the cursor must point at alice@x.com, the last record")
	assert.Nil(t, next.LastVisible)
}

func TestFetchPageFilterConjunction(t *testing.T) {
	uc := newTestUseCase(t, seedUsers(t, 20))

	page, err := uc.FetchPage(context.Background(), "Users", query.Options{
		Filters: []query.Filter{
			{Field: "role", Operator: docstore.OpEqual, Value: "admin"},
			{Field: "rank", Operator: docstore.OpIn, Value: []any{0, 2}},
		},
		Pagination: query.Pagination{PageSize: 100},
	})
	require.NoError(t, err)
	require.NotEmpty(t, page.Data)
	for _, d := range page.Data {
		assert.Equal(t, "admin", d.Fields["role"])
		assert.Contains(t, []any{0, 2}, d.Fields["rank"])
	}
	assert.Equal(t, int64(len(page.Data)), page.TotalCount)
}

func TestFetchPageSortPrecedence(t *testing.T) {
	uc := newTestUseCase(t, seedUsers(t, 20))

	page, err := uc.FetchPage(context.Background(), "Users", query.Options{
		Order: []query.Order{
			{Field: "rank", Direction: docstore.Desc},
			{Field: "email", Direction: docstore.Asc},
		},
		Pagination: query.Pagination{PageSize: 100},
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 20)
	for i := 1; i < len(page.Data); i++ {
		prev, cur := page.Data[i-1], page.Data[i]
		pr, cr := prev.Fields["rank"].(int), cur.Fields["rank"].(int)
		require.GreaterOrEqual(t, pr, cr)
		if pr == cr {
			assert.Less(t, prev.Fields["email"].(string), cur.Fields["email"].(string))
		}
	}
}

func TestSearchInjectsAscendingOrder(t *testing.T) {
	q := buildBase("Users", query.Options{
		Pagination: query.Pagination{PageSize: 10},
		Search:     &query.Search{Field: "email", Value: "a"},
	})
	require.Len(t, q.Orders, 1)
	assert.Equal(t, docstore.NewOrder("email", docstore.Asc), q.Orders[0])
	assert.Equal(t, "a", q.RangeStart.Value)
	assert.Equal(t, "a"+query.SearchSentinel, q.RangeEnd.Value)

	q = buildBase("Users", query.Options{
		Order:      []query.Order{{Field: "email", Direction: docstore.Desc}},
		Pagination: query.Pagination{PageSize: 10},
		Search:     &query.Search{Field: "email", Value: "a"},
	})
	require.Len(t, q.Orders, 1, "an existing order on the search field is kept")
	assert.Equal(t, docstore.Desc, q.Orders[0].Direction)
}

func TestPrefixSemantics(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "Users", "1", map[string]any{"email": "joe@x.com"}))
	require.NoError(t, s.Set(ctx, "Users", "2", map[string]any{"email": "mojo@x.com"}))
	require.NoError(t, s.Set(ctx, "Users", "3", map[string]any{"email": "jo"}))
	uc := newTestUseCase(t, s)

	page, err := uc.FetchPage(ctx, "Users", query.Options{
		Pagination: query.Pagination{PageSize: 10},
		Search:     &query.Search{Field: "email", Value: "jo"},
	})
	require.NoError(t, err)
	for _, d := range page.Data {
		assert.True(t, strings.HasPrefix(d.Fields["email"].(string), "jo"))
	}
	assert.Equal(t, []string{"3", "1"}, ids(page.Data))
}

func TestCursorContinuity(t *testing.T) {
	uc := newTestUseCase(t, seedUsers(t, 25))
	ctx := context.Background()
	opts := query.Options{
		Order:      []query.Order{{Field: "rank", Direction: docstore.Asc}},
		Pagination: query.Pagination{PageSize: 20},
	}

	all, err := uc.Page(ctx, "Users", opts)
	require.NoError(t, err)

	opts.Pagination.PageSize = 10
	first, err := uc.Page(ctx, "Users", opts)
	require.NoError(t, err)
	require.NotNil(t, first.LastVisible)

	opts.Pagination.LastVisible = *first.LastVisible
	second, err := uc.Page(ctx, "Users", opts)
	require.NoError(t, err)

	assert.Equal(t, ids(all.Data), append(ids(first.Data), ids(second.Data)...))
}

func TestCountIndependentOfPageSize(t *testing.T) {
	uc := newTestUseCase(t, seedUsers(t, 30))
	ctx := context.Background()
	filters := []query.Filter{{Field: "role", Operator: docstore.OpEqual, Value: "staff"}}

	small, err := uc.FetchPage(ctx, "Users", query.Options{Filters: filters, Pagination: query.Pagination{PageSize: 1}})
	require.NoError(t, err)
	large, err := uc.FetchPage(ctx, "Users", query.Options{Filters: filters, Pagination: query.Pagination{PageSize: 100}})
	require.NoError(t, err)

	assert.Equal(t, int64(15), small.TotalCount)
	assert.Equal(t, small.TotalCount, large.TotalCount)
	assert.Len(t, small.Data, 1)
}

func TestEmptyResult(t *testing.T) {
	uc := newTestUseCase(t, seedContacts(t))

	page, err := uc.FetchPage(context.Background(), "Contacts", query.Options{
		Filters:    []query.Filter{{Field: "name", Operator: docstore.OpEqual, Value: "Nobody"}},
		Pagination: query.Pagination{PageSize: 10},
	})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)
	assert.Zero(t, page.TotalCount)
	assert.Nil(t, page.LastVisible)
}

func TestStoreRejectsSearchBehindOtherOrder(t *testing.T) {
	uc := newTestUseCase(t, seedContacts(t))

	_, err := uc.FetchPage(context.Background(), "Contacts", query.Options{
		Order:      []query.Order{{Field: "name", Direction: docstore.Asc}},
		Pagination: query.Pagination{PageSize: 10},
		Search:     &query.Search{Field: "email", Value: "alice"},
	})
	var be *query.BackendError
	require.ErrorAs(t, err, &be)
	assert.ErrorIs(t, err, docstore.ErrInvalidQuery)
}

func TestTamperedCursor(t *testing.T) {
	uc := newTestUseCase(t, seedContacts(t))
	ctx := context.Background()
	opts := query.Options{
		Order:      []query.Order{{Field: "email", Direction: docstore.Asc}},
		Pagination: query.Pagination{PageSize: 1},
	}

	first, err := uc.Page(ctx, "Contacts", opts)
	require.NoError(t, err)
	require.NotNil(t, first.LastVisible)

	token := []byte(*first.LastVisible)
	mid := len(token) / 2
	if token[mid] == 'A' {
		token[mid] = 'B'
	} else {
		token[mid] = 'A'
	}
	opts.Pagination.LastVisible = string(token)

	_, err = uc.FetchPage(ctx, "Contacts", opts)
	var be *query.BackendError
	require.ErrorAs(t, err, &be)
	assert.ErrorIs(t, err, docstore.ErrInvalidCursor)
}

func TestValidation(t *testing.T) {
	uc := newTestUseCase(t, seedContacts(t))
	ctx := context.Background()

	tcs := []struct {
		name       string
		collection string
		opts       query.Options
		wantErr    error
	}{
		{name: "zero page size", collection: "Contacts", opts: query.Options{}, wantErr: query.ErrInvalidPageSize},
		{name: "negative page size", collection: "Contacts", opts: query.Options{Pagination: query.Pagination{PageSize: -1}}, wantErr: query.ErrInvalidPageSize},
		{name: "missing collection", opts: query.Options{Pagination: query.Pagination{PageSize: 1}}, wantErr: query.ErrInvalidCollection},
		{
			name:       "bad operator",
			collection: "Contacts",
			opts: query.Options{
				Filters:    []query.Filter{{Field: "email", Operator: "like", Value: "a"}},
				Pagination: query.Pagination{PageSize: 1},
			},
			wantErr: query.ErrInvalidOperator,
		},
		{
			name:       "bad direction",
			collection: "Contacts",
			opts: query.Options{
				Order:      []query.Order{{Field: "email", Direction: "up"}},
				Pagination: query.Pagination{PageSize: 1},
			},
			wantErr: query.ErrInvalidDirection,
		},
		{
			name:       "bad field",
			collection: "Contacts",
			opts: query.Options{
				Search:     &query.Search{Field: "e-mail", Value: "a"},
				Pagination: query.Pagination{PageSize: 1},
			},
			wantErr: query.ErrInvalidField,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.FetchPage(ctx, tc.collection, tc.opts)
			require.ErrorIs(t, err, tc.wantErr)
			assert.True(t, query.IsValidationError(err))
		})
	}
}

func TestGenerationEchoed(t *testing.T) {
	uc := newTestUseCase(t, seedContacts(t))

	page, err := uc.FetchPage(context.Background(), "Contacts", query.Options{
		Pagination: query.Pagination{PageSize: 10},
		Generation: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), page.Generation)
}

type failingStore struct {
	docstore.Store
	err error
}

func (s failingStore) Count(ctx context.Context, q docstore.Query) (int64, error) {
	return 0, s.err
}

func (s failingStore) Run(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestBackendErrorCancelsSibling(t *testing.T) {
	storeErr := fmt.Errorf("%w: connection refused", docstore.ErrUnavailable)
	uc := newTestUseCase(t, failingStore{err: storeErr})

	_, err := uc.FetchPage(context.Background(), "Contacts", query.Options{Pagination: query.Pagination{PageSize: 10}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, docstore.ErrUnavailable))
	assert.Equal(t, storeErr.Error(), err.Error())
}
