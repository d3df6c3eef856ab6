package rabbitmq

import (
	"fmt"

	"admin-srv/config"
	"admin-srv/pkg/log"
	"admin-srv/pkg/rabbitmq"
)

// Connect dials RabbitMQ. The connection reconnects on its own after a drop.
func Connect(l log.Logger, cfg config.RabbitMQConfig) (rabbitmq.IRabbitMQ, error) {
	conn, err := rabbitmq.NewRabbitMQ(l, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return conn, nil
}

// Disconnect closes the connection.
func Disconnect(conn rabbitmq.IRabbitMQ) {
	if conn != nil {
		conn.Close()
	}
}
