package producer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-srv/internal/mailer"
	mailerRabbit "admin-srv/internal/mailer/delivery/rabbitmq"
	"admin-srv/pkg/log"
	pkgRabbit "admin-srv/pkg/rabbitmq"
)

type fakeChannel struct {
	exchanges []pkgRabbit.ExchangeArgs
	published []pkgRabbit.PublishArgs
}

func (c *fakeChannel) ExchangeDeclare(exc pkgRabbit.ExchangeArgs) error {
	c.exchanges = append(c.exchanges, exc)
	return nil
}
func (c *fakeChannel) QueueDeclare(queue pkgRabbit.QueueArgs) error { return nil }
func (c *fakeChannel) QueueBind(queueBind pkgRabbit.QueueBindArgs) error { return nil }
func (c *fakeChannel) Publish(ctx context.Context, publish pkgRabbit.PublishArgs) error {
	c.published = append(c.published, publish)
	return nil
}
func (c *fakeChannel) Close() error { return nil }

func TestPublishMail(t *testing.T) {
	ch := &fakeChannel{}
	p, err := New(log.NewNop(), ch)
	require.NoError(t, err)
	require.Len(t, ch.exchanges, 1)
	assert.Equal(t, mailerRabbit.ExchangeMail, ch.exchanges[0].Name)

	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	err = p.PublishMail(context.Background(), mailer.MailMessage{
		Type:      mailer.MailTypeResetPassword,
		Recipient: "alice@x.com",
		Subject:   "Reset",
		Body:      "<p>hi</p>",
		Lang:      "en",
		CreatedAt: now,
	})
	require.NoError(t, err)
	require.Len(t, ch.published, 1)

	pub := ch.published[0]
	assert.Equal(t, mailerRabbit.RoutingKeyResetPassword, pub.RoutingKey)
	assert.Equal(t, mailerRabbit.ContentTypeJSON, pub.Msg.ContentType)

	var msg mailerRabbit.MailMessage
	require.NoError(t, json.Unmarshal(pub.Msg.Body, &msg))
	assert.Equal(t, "alice@x.com", msg.Recipient)
	assert.True(t, now.Equal(msg.CreatedAt))
}
