package audit

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Record publishes e. Failures are logged and never returned so that the
	// audited operation is not affected.
	Record(ctx context.Context, e Event)
}

// Producer publishes audit events to the event bus.
type Producer interface {
	PublishEvent(ctx context.Context, e Event) error
}
