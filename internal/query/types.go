package query

import "admin-srv/internal/docstore"

// SearchSentinel is appended to a search value to form the exclusive upper
// bound of its prefix range.
const SearchSentinel = "\U0010FFFF"

type Filter struct {
	Field    string
	Operator docstore.Operator
	Value    any
}

type Order struct {
	Field     string
	Direction docstore.Direction
}

// Pagination positions a page. An empty LastVisible means the first page.
type Pagination struct {
	PageSize    int
	LastVisible string
}

// Search is a prefix match of Value on Field.
type Search struct {
	Field string
	Value string
}

// Options describes one list request. It is copied per call and never mutated.
type Options struct {
	Filters    []Filter
	Order      []Order
	Pagination Pagination
	Search     *Search
	// Generation is echoed in the Page so callers can drop stale responses.
	Generation int64
}

type Page struct {
	Data        []docstore.Document
	TotalCount  int64
	LastVisible *string
	Generation  int64
}

type PageOutput struct {
	Data        []docstore.Document
	LastVisible *string
}
