package rabbitmq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connectionImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *connectionImpl) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.conn.IsClosed()
}

func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.channel()
	if err != nil {
		return nil, err
	}
	chImpl := &channelImpl{conn: c, ch: ch}
	chImpl.listenReconnect()
	return chImpl, nil
}

func (c *connectionImpl) channel() (*amqp.Channel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.conn == nil {
		return nil, amqp.ErrClosed
	}
	return c.conn.Channel()
}

func (c *connectionImpl) dial(connChan chan<- *amqp.Connection, cancel <-chan struct{}) {
	ctx := context.Background()
	for attempt := 1; ; attempt++ {
		select {
		case <-cancel:
			return
		default:
		}

		c.l.Infof(ctx, "pkg.rabbitmq.dial: connecting to RabbitMQ, attempt %d", attempt)
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.l.Warnf(ctx, "pkg.rabbitmq.dial: connection failed: %v", err)
			time.Sleep(RetryConnectionDelay)
			continue
		}

		select {
		case connChan <- conn:
		case <-cancel:
			_ = conn.Close()
		}
		return
	}
}

func (c *connectionImpl) connect() error {
	connChan := make(chan *amqp.Connection)
	cancel := make(chan struct{})
	go c.dial(connChan, cancel)

	select {
	case conn := <-connChan:
		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()
		c.listenNotifyClose(conn)
		return nil
	case <-time.After(RetryConnectionTimeout):
		close(cancel)
		return ErrConnectionTimeout
	}
}

func (c *connectionImpl) listenNotifyClose(conn *amqp.Connection) {
	notifyClose := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		err, ok := <-notifyClose
		if !ok || err == nil {
			// graceful Close
			return
		}

		ctx := context.Background()
		c.l.Warnf(ctx, "pkg.rabbitmq.listenNotifyClose: connection closed: %v", err)
		for {
			if err := c.connect(); err != nil {
				c.l.Errorf(ctx, "pkg.rabbitmq.listenNotifyClose: reconnect failed: %v", err)
				continue
			}
			break
		}

		c.mu.RLock()
		receivers := append([]chan struct{}(nil), c.reconnects...)
		c.mu.RUnlock()
		for _, r := range receivers {
			select {
			case r <- struct{}{}:
			default:
			}
		}
	}()
}

func (c *connectionImpl) notifyReconnect(receiver chan struct{}) {
	c.mu.Lock()
	c.reconnects = append(c.reconnects, receiver)
	c.mu.Unlock()
}

func (ch *channelImpl) current() *amqp.Channel {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return ch.ch
}

func (ch *channelImpl) ExchangeDeclare(exc ExchangeArgs) error {
	return ch.current().ExchangeDeclare(exc.spread())
}

func (ch *channelImpl) QueueDeclare(queue QueueArgs) error {
	_, err := ch.current().QueueDeclare(queue.spread())
	return err
}

func (ch *channelImpl) QueueBind(queueBind QueueBindArgs) error {
	return ch.current().QueueBind(queueBind.spread())
}

func (ch *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	return ch.current().PublishWithContext(publish.spread(ctx))
}

func (ch *channelImpl) Close() error {
	return ch.current().Close()
}

func (ch *channelImpl) listenReconnect() {
	reconnected := make(chan struct{}, 1)
	ch.conn.notifyReconnect(reconnected)
	go func() {
		for range reconnected {
			channel, err := ch.conn.channel()
			if err != nil {
				ch.conn.l.Errorf(context.Background(), "pkg.rabbitmq.listenReconnect: channel failed: %v", err)
				continue
			}
			ch.mu.Lock()
			_ = ch.ch.Close()
			ch.ch = channel
			ch.mu.Unlock()
		}
	}()
}
