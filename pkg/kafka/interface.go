package kafka

// IProducer publishes keyed messages to one topic.
// Implementations are safe for concurrent use.
//
//go:generate mockery --name IProducer
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a synchronous Kafka producer.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}
