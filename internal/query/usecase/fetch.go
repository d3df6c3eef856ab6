package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"admin-srv/internal/docstore"
	"admin-srv/internal/query"
	"admin-srv/pkg/metrics"
)

// FetchPage validates opts once, then runs the count and page variants
// concurrently. The first failure cancels the other call.
func (uc *implUseCase) FetchPage(ctx context.Context, collection string, opts query.Options) (query.Page, error) {
	if err := validate(collection, opts); err != nil {
		return query.Page{}, err
	}

	start := time.Now()
	var (
		total int64
		out   query.PageOutput
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = uc.count(gctx, collection, opts)
		return err
	})
	g.Go(func() error {
		var err error
		out, err = uc.page(gctx, collection, opts)
		return err
	})
	err := g.Wait()
	metrics.QueryDuration.WithLabelValues(collection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QueryTotal.WithLabelValues(collection, metrics.StatusError).Inc()
		uc.l.Errorf(ctx, "query.usecase.FetchPage: Failed to fetch %s: %v", collection, err)
		return query.Page{}, err
	}
	metrics.QueryTotal.WithLabelValues(collection, metrics.StatusOK).Inc()

	return query.Page{
		Data:        out.Data,
		TotalCount:  total,
		LastVisible: out.LastVisible,
		Generation:  opts.Generation,
	}, nil
}

func (uc *implUseCase) Count(ctx context.Context, collection string, opts query.Options) (int64, error) {
	if err := validate(collection, opts); err != nil {
		return 0, err
	}
	return uc.count(ctx, collection, opts)
}

func (uc *implUseCase) Page(ctx context.Context, collection string, opts query.Options) (query.PageOutput, error) {
	if err := validate(collection, opts); err != nil {
		return query.PageOutput{}, err
	}
	return uc.page(ctx, collection, opts)
}

func (uc *implUseCase) count(ctx context.Context, collection string, opts query.Options) (int64, error) {
	n, err := uc.store.Count(ctx, buildBase(collection, opts))
	if err != nil {
		return 0, &query.BackendError{Op: "count", Err: err}
	}
	return n, nil
}

func (uc *implUseCase) page(ctx context.Context, collection string, opts query.Options) (query.PageOutput, error) {
	q := docstore.NewLimit(buildBase(collection, opts), opts.Pagination.PageSize)
	if opts.Pagination.LastVisible != "" {
		c, err := uc.decodeCursor(opts.Pagination.LastVisible)
		if err != nil {
			return query.PageOutput{}, &query.BackendError{Op: "page", Err: err}
		}
		q = docstore.NewCursorAfter(q, c)
	}

	docs, err := uc.store.Run(ctx, q)
	if err != nil {
		return query.PageOutput{}, &query.BackendError{Op: "page", Err: err}
	}

	out := query.PageOutput{Data: docs}
	if len(docs) > 0 {
		last := docstore.CursorOf(docs[len(docs)-1], docstore.EffectiveOrders(q))
		token, err := uc.encodeCursor(last)
		if err != nil {
			uc.l.Errorf(ctx, "query.usecase.page: Failed to encode cursor: %v", err)
			return query.PageOutput{}, err
		}
		out.LastVisible = &token
	}
	return out, nil
}
