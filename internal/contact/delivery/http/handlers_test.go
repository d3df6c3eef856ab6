package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-srv/internal/contact"
	"admin-srv/internal/docstore"
	"admin-srv/internal/middleware"
	"admin-srv/internal/model"
	"admin-srv/internal/query"
	"admin-srv/pkg/log"
	"admin-srv/pkg/scope"
)

type fakeVerifier struct{}

func (fakeVerifier) VerifyToken(ctx context.Context, token string) (scope.Payload, error) {
	return scope.Payload{UserID: "u1"}, nil
}

type fakeUseCase struct {
	listInput contact.ListInput
	exportErr error
}

func (f *fakeUseCase) List(ctx context.Context, input contact.ListInput) (query.Page, error) {
	f.listInput = input
	if len(input.Order) > 0 && input.Order[0].Field == "subject" {
		return query.Page{}, &query.BackendError{Op: "page", Err: docstore.ErrInvalidQuery}
	}
	return query.Page{Data: []docstore.Document{{ID: "c1", Fields: map[string]any{"name": "Ann"}}}, TotalCount: 1}, nil
}

func (f *fakeUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (f *fakeUseCase) Export(ctx context.Context, sc model.Scope) (contact.ExportOutput, error) {
	if f.exportErr != nil {
		return contact.ExportOutput{}, f.exportErr
	}
	return contact.ExportOutput{URL: "https://minio.local/x.csv", ObjectName: "x.csv", Count: 3, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func newTestRouter(t *testing.T, uc *fakeUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	r := gin.New()
	r.Use(middleware.Recovery(l, nil))
	New(l, uc, nil).RegisterRoutes(r.Group(""), middleware.New(l, fakeVerifier{}, middleware.Config{}))
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer any")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(t, uc)

	w := do(r, http.MethodGet, "/api/v1/contacts?page_size=20")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, uc.listInput.Pagination.PageSize)
	assert.Contains(t, w.Body.String(), `"name":"Ann"`)

	w = do(r, http.MethodGet, "/api/v1/contacts?sort=subject:asc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExport(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newTestRouter(t, &fakeUseCase{})
		w := do(r, http.MethodPost, "/api/v1/contacts/export")
		require.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Data exportResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "https://minio.local/x.csv", env.Data.URL)
		assert.Equal(t, 3, env.Data.Count)
	})

	t.Run("storage failure", func(t *testing.T) {
		r := newTestRouter(t, &fakeUseCase{exportErr: contact.ErrExportFailed})
		w := do(r, http.MethodPost, "/api/v1/contacts/export")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
