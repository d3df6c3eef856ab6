package docstore

import "context"

// Store is a schemaless, collection oriented document database.
// Implementations are safe for concurrent use and reject queries that fail
// Validate with ErrInvalidQuery.
//
//go:generate mockery --name Store
type Store interface {
	// Run returns the documents matching q in order.
	Run(ctx context.Context, q Query) ([]Document, error)
	// Count returns how many documents match the filters and range of q.
	// Orders only matter in that documents missing an order field do not match.
	// Limit and StartAfter are ignored.
	Count(ctx context.Context, q Query) (int64, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	// Set creates or replaces a document.
	Set(ctx context.Context, collection, id string, fields map[string]any) error
	// Update merges top level fields into an existing document.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
}
