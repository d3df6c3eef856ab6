package producer

import (
	"admin-srv/internal/mailer"
	mailerRabbit "admin-srv/internal/mailer/delivery/rabbitmq"
	"admin-srv/pkg/log"
	pkgRabbit "admin-srv/pkg/rabbitmq"
)

type implProducer struct {
	l  log.Logger
	ch pkgRabbit.IChannel
}

// New declares the mail exchange on ch and returns a mailer.Producer.
func New(l log.Logger, ch pkgRabbit.IChannel) (mailer.Producer, error) {
	err := ch.ExchangeDeclare(pkgRabbit.ExchangeArgs{
		Name:    mailerRabbit.ExchangeMail,
		Type:    mailerRabbit.ExchangeKind,
		Durable: true,
	})
	if err != nil {
		return nil, err
	}
	return &implProducer{l: l, ch: ch}, nil
}
