package rabbitmq

import "time"

// MailMessage is the wire format consumed by the mail delivery worker.
type MailMessage struct {
	Type      string    `json:"type"`
	Recipient string    `json:"recipient"`
	CC        []string  `json:"cc,omitempty"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Lang      string    `json:"lang"`
	CreatedAt time.Time `json:"created_at"`
}
