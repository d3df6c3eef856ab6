package docstore

import "errors"

var (
	// ErrInvalidQuery is returned when a query shape cannot be served, such as
	// inequality filters on more than one field.
	ErrInvalidQuery     = errors.New("docstore: invalid query")
	ErrInvalidCursor    = errors.New("docstore: invalid cursor")
	ErrNotFound         = errors.New("docstore: document not found")
	ErrPermissionDenied = errors.New("docstore: permission denied")
	ErrUnavailable      = errors.New("docstore: backend unavailable")
)
