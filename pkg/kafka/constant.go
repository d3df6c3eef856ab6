package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// Audit events must not be dropped or duplicated, so the producer waits for
// every in-sync replica and runs idempotent with one request in flight.
const (
	ProducerTimeout         = 10 * time.Second
	ProducerRetryMax        = 5
	ProducerRetryBackoff    = 250 * time.Millisecond
	ProducerMaxOpenRequests = 1
	ProducerRequiredAcks    = sarama.WaitForAll
)

// KafkaVersion is the protocol version the producer speaks.
var KafkaVersion = sarama.V2_6_0_0
