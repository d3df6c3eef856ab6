package usecase

import (
	"context"

	"admin-srv/internal/audit"
	"admin-srv/internal/contact"
	"admin-srv/internal/docstore"
	"admin-srv/internal/model"
	"admin-srv/internal/query"
)

var defaultOrder = []query.Order{{Field: model.ContactFieldCreatedAt, Direction: docstore.Desc}}

func (uc *implUseCase) List(ctx context.Context, input contact.ListInput) (query.Page, error) {
	opts := query.Options{
		Order:      input.Order,
		Pagination: input.Pagination,
		Generation: input.Generation,
	}
	if len(opts.Order) == 0 {
		opts.Order = defaultOrder
	}

	page, err := uc.queryUC.FetchPage(ctx, model.CollectionContacts, opts)
	if err != nil {
		uc.l.Errorf(ctx, "contact.usecase.List: Failed to fetch page: %v", err)
		return query.Page{}, err
	}
	return page, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.store.Delete(ctx, model.CollectionContacts, id); err != nil {
		uc.l.Errorf(ctx, "contact.usecase.Delete: Failed to delete contact %s: %v", id, err)
		return err
	}
	uc.record(ctx, sc, audit.ActionDelete, id)
	return nil
}

func (uc *implUseCase) record(ctx context.Context, sc model.Scope, action, id string) {
	uc.audit.Record(ctx, audit.Event{
		Action:     action,
		Collection: model.CollectionContacts,
		DocumentID: id,
		ActorID:    sc.UserID,
		OccurredAt: uc.now(),
	})
}
