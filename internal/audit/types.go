package audit

import "time"

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionExport = "export"
)

// Event describes one mutation made from the console.
type Event struct {
	Action     string
	Collection string
	DocumentID string
	ActorID    string
	OccurredAt time.Time
}
