package mailer

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// SendResetPassword renders the reset mail in the locale of ctx and
	// hands it to the mail delivery worker.
	SendResetPassword(ctx context.Context, input SendResetPasswordInput) error
}

// Producer publishes rendered mails to the delivery worker.
type Producer interface {
	PublishMail(ctx context.Context, msg MailMessage) error
}
