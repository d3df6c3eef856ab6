package mailer

import "time"

const (
	MailTypeResetPassword = "reset_password"
)

type SendResetPasswordInput struct {
	Email string
	Name  string
	Code  string
}

// MailMessage is the rendered mail handed to the delivery worker.
type MailMessage struct {
	Type      string
	Recipient string
	CC        []string
	Subject   string
	Body      string
	Lang      string
	CreatedAt time.Time
}
