package kafka

import (
	"fmt"

	"admin-srv/config"
	"admin-srv/pkg/kafka"
)

// Connect creates the synchronous audit producer.
func Connect(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producer, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}
	return producer, nil
}

// Disconnect closes the producer.
func Disconnect(producer kafka.IProducer) error {
	if producer == nil {
		return nil
	}
	return producer.Close()
}
