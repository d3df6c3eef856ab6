package email

import "errors"

var ErrUnknownTemplate = errors.New("email: unknown template")

type EmailMeta struct {
	Recipient    string
	CC           []string
	TemplateType string
}

type Email struct {
	Recipient string   `json:"recipient"`
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	CC        []string `json:"cc,omitempty"`
}

// ResetPassword is applied to the reset_password template.
type ResetPassword struct {
	Name       string
	Email      string
	ResetLink  string
	ExpireMins int
}
