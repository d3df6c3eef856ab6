package producer

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"admin-srv/internal/mailer"
	mailerRabbit "admin-srv/internal/mailer/delivery/rabbitmq"
	pkgRabbit "admin-srv/pkg/rabbitmq"
)

func (p *implProducer) PublishMail(ctx context.Context, msg mailer.MailMessage) error {
	body, err := json.Marshal(mailerRabbit.MailMessage{
		Type:      msg.Type,
		Recipient: msg.Recipient,
		CC:        msg.CC,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Lang:      msg.Lang,
		CreatedAt: msg.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal mail message: %w", err)
	}

	err = p.ch.Publish(ctx, pkgRabbit.PublishArgs{
		Exchange:   mailerRabbit.ExchangeMail,
		RoutingKey: routingKey(msg.Type),
		Msg: pkgRabbit.Publishing{
			ContentType:  mailerRabbit.ContentTypeJSON,
			DeliveryMode: amqp.Persistent,
			Timestamp:    msg.CreatedAt,
			Body:         body,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish mail message: %w", err)
	}

	p.l.Infof(ctx, "Published %s mail to %s", msg.Type, msg.Recipient)
	return nil
}

func routingKey(mailType string) string {
	if mailType == mailer.MailTypeResetPassword {
		return mailerRabbit.RoutingKeyResetPassword
	}
	return "mail." + mailType
}
