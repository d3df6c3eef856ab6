package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"admin-srv/internal/audit"
	auditKafka "admin-srv/internal/audit/delivery/kafka"
)

func (p *implProducer) PublishEvent(ctx context.Context, e audit.Event) error {
	body, err := json.Marshal(auditKafka.AuditMessage{
		Action:     e.Action,
		Collection: e.Collection,
		DocumentID: e.DocumentID,
		ActorID:    e.ActorID,
		OccurredAt: e.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	if err := p.producer.Publish([]byte(e.DocumentID), body); err != nil {
		return fmt.Errorf("failed to publish audit event: %w", err)
	}

	p.l.Debugf(ctx, "Published audit event %s %s/%s", e.Action, e.Collection, e.DocumentID)
	return nil
}
