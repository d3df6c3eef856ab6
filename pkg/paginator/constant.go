package paginator

import "errors"

const (
	// DefaultPageSize is used when the request does not set a page size.
	DefaultPageSize = 10
	// MaxPageSize caps the page size to prevent excessive queries.
	MaxPageSize = 100
)

var ErrNegativePageSize = errors.New("paginator: page size must not be negative")
