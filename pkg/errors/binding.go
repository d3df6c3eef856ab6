package errors

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// NewBindingError turns the field failures of a gin binding error into a
// ValidationErrorCollector. It returns nil when err carries no field failures,
// e.g. malformed JSON.
func NewBindingError(err error) *ValidationErrorCollector {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	c := NewValidationErrorCollector()
	for _, fe := range fieldErrs {
		c.Add(fe.Field(), "failed on "+fe.Tag())
	}
	return c
}
