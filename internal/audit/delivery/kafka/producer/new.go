package producer

import (
	"admin-srv/internal/audit"
	pkgKafka "admin-srv/pkg/kafka"
	"admin-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates an audit.Producer on a producer bound to the audit topic.
func New(l log.Logger, producer pkgKafka.IProducer) audit.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
