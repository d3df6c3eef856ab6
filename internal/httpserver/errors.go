package httpserver

import "errors"

var errRabbitNotReady = errors.New("rabbitmq connection is reconnecting")
