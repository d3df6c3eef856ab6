package kafka

import "time"

// AuditMessage is the wire format of an audit event.
type AuditMessage struct {
	Action     string    `json:"action"`
	Collection string    `json:"collection"`
	DocumentID string    `json:"document_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
