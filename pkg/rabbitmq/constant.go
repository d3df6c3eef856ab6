package rabbitmq

import (
	"errors"
	"time"
)

// Dial retries every RetryConnectionDelay until RetryConnectionTimeout.
const (
	RetryConnectionDelay   = 2 * time.Second
	RetryConnectionTimeout = 20 * time.Second
)

const (
	ContentTypeJSON   = "application/json"
	ExchangeTypeTopic = "topic"
)

var ErrConnectionTimeout = errors.New("rabbitmq: connection timeout")
