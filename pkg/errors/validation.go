package errors

import "strings"

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + strings.Join(e.Messages, ", ")
}

// ValidationErrorCollector accumulates ValidationErrors and is itself an error
// once at least one was added.
type ValidationErrorCollector struct {
	errors []ValidationError
}

func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{}
}

func (c *ValidationErrorCollector) Add(field string, messages ...string) {
	c.errors = append(c.errors, ValidationError{Field: field, Messages: messages})
}

func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

func (c *ValidationErrorCollector) Errors() []ValidationError {
	return c.errors
}

func (c *ValidationErrorCollector) Error() string {
	parts := make([]string, 0, len(c.errors))
	for _, e := range c.errors {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}
