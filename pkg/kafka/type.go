package kafka

import "github.com/IBM/sarama"

// Config holds configuration for Kafka producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}
