package usecase

import (
	"context"

	"admin-srv/internal/docstore"
	"admin-srv/internal/model"
	"admin-srv/internal/query"
	"admin-srv/internal/user"
)

var defaultOrder = []query.Order{{Field: model.UserFieldEmail, Direction: docstore.Desc}}

// List pages through Users, newest emails first unless the caller sorts.
func (uc *implUseCase) List(ctx context.Context, input user.ListInput) (query.Page, error) {
	opts := query.Options{
		Order:      input.Order,
		Pagination: input.Pagination,
		Generation: input.Generation,
	}
	if len(opts.Order) == 0 {
		opts.Order = defaultOrder
	}
	if input.Search != "" {
		opts.Search = &query.Search{Field: model.UserFieldEmail, Value: input.Search}
	}

	page, err := uc.queryUC.FetchPage(ctx, model.CollectionUsers, opts)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.List: Failed to fetch page: %v", err)
		return query.Page{}, err
	}
	return page, nil
}
