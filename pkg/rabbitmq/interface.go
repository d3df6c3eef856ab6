package rabbitmq

import (
	"context"

	"admin-srv/pkg/log"
)

// IRabbitMQ is a self-healing RabbitMQ connection.
// Implementations are safe for concurrent use.
type IRabbitMQ interface {
	Close()
	IsReady() bool
	Channel() (IChannel, error)
}

// IChannel is the subset of channel operations used by publishers.
//
//go:generate mockery --name IChannel
type IChannel interface {
	ExchangeDeclare(exc ExchangeArgs) error
	QueueDeclare(queue QueueArgs) error
	QueueBind(queueBind QueueBindArgs) error
	Publish(ctx context.Context, publish PublishArgs) error
	Close() error
}

// NewRabbitMQ dials url, retrying until RetryConnectionTimeout elapses.
// Once connected the connection and its channels are re-established
// automatically when the broker closes them.
func NewRabbitMQ(l log.Logger, url string) (IRabbitMQ, error) {
	conn := &connectionImpl{l: l, url: url}
	if err := conn.connect(); err != nil {
		return nil, err
	}
	return conn, nil
}
