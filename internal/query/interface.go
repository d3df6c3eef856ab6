package query

import "context"

// UseCase composes store queries from list Options.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// FetchPage runs Count and Page concurrently and combines them.
	FetchPage(ctx context.Context, collection string, opts Options) (Page, error)
	Count(ctx context.Context, collection string, opts Options) (int64, error)
	Page(ctx context.Context, collection string, opts Options) (PageOutput, error)
}
