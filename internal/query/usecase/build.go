package usecase

import (
	"fmt"

	"github.com/samber/lo"

	"admin-srv/internal/docstore"
	"admin-srv/internal/query"
)

func validate(collection string, opts query.Options) error {
	if collection == "" {
		return query.ErrInvalidCollection
	}
	for _, f := range opts.Filters {
		if !docstore.IsValidFieldPath(f.Field) {
			return fmt.Errorf("%w: %q", query.ErrInvalidField, f.Field)
		}
		if !docstore.IsValidOperator(f.Operator) {
			return fmt.Errorf("%w: %q", query.ErrInvalidOperator, f.Operator)
		}
	}
	for _, o := range opts.Order {
		if !docstore.IsValidFieldPath(o.Field) {
			return fmt.Errorf("%w: %q", query.ErrInvalidField, o.Field)
		}
		if !docstore.IsValidDirection(o.Direction) {
			return fmt.Errorf("%w: %q", query.ErrInvalidDirection, o.Direction)
		}
	}
	if opts.Search != nil && opts.Search.Field != "" && !docstore.IsValidFieldPath(opts.Search.Field) {
		return fmt.Errorf("%w: %q", query.ErrInvalidField, opts.Search.Field)
	}
	if opts.Pagination.PageSize <= 0 {
		return fmt.Errorf("%w: %d", query.ErrInvalidPageSize, opts.Pagination.PageSize)
	}
	return nil
}

// buildBase applies the steps shared by the count and page variants:
// filters, orders, then the search order and prefix range.
func buildBase(collection string, opts query.Options) docstore.Query {
	q := docstore.NewQuery(collection)
	for _, f := range opts.Filters {
		q = q.Where(docstore.NewFilter(f.Field, f.Operator, f.Value))
	}
	for _, o := range opts.Order {
		q = q.OrderBy(docstore.NewOrder(o.Field, o.Direction))
	}

	s := opts.Search
	if s == nil || s.Field == "" || s.Value == "" {
		return q
	}
	hasOrder := lo.ContainsBy(opts.Order, func(o query.Order) bool {
		return o.Field == s.Field
	})
	if !hasOrder {
		q = q.OrderBy(docstore.NewOrder(s.Field, docstore.Asc))
	}
	q.RangeStart = docstore.NewRangeStart(s.Field, s.Value)
	q.RangeEnd = docstore.NewRangeEnd(s.Field, s.Value+query.SearchSentinel)
	return q
}
