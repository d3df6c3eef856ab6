package usecase

import (
	"context"

	"admin-srv/internal/audit"
)

func (uc *implUseCase) Record(ctx context.Context, e audit.Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = uc.now()
	}
	if err := uc.producer.PublishEvent(ctx, e); err != nil {
		uc.l.Warnf(ctx, "audit.usecase.Record: Failed to publish %s %s/%s: %v", e.Action, e.Collection, e.DocumentID, err)
	}
}
