package query

import "errors"

// Validation errors. The composer rejects these before the store is called.
var (
	ErrInvalidCollection = errors.New("query: invalid collection")
	ErrInvalidField      = errors.New("query: invalid field")
	ErrInvalidOperator   = errors.New("query: invalid operator")
	ErrInvalidDirection  = errors.New("query: invalid direction")
	ErrInvalidPageSize   = errors.New("query: page size must be positive")
)

// BackendError is a rejection from the document store. Error returns the
// store message and Unwrap exposes the store sentinel.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is one of the composer validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidCollection) ||
		errors.Is(err, ErrInvalidField) ||
		errors.Is(err, ErrInvalidOperator) ||
		errors.Is(err, ErrInvalidDirection) ||
		errors.Is(err, ErrInvalidPageSize)
}
