package contact

import (
	"context"

	"admin-srv/internal/model"
	"admin-srv/internal/query"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (query.Page, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	// Export writes every contact to a CSV object and returns a download link.
	Export(ctx context.Context, sc model.Scope) (ExportOutput, error)
}
