package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pullup-club/pkg/config"
	"pullup-club/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationExchange  = "notifications"
	AdminReviewQueueName  = "admin_review_queue"
	AdminReviewRoutingKey = "admin_review"
)

// Notification is the fire-and-forget message handed to the notification sink.
type Notification struct {
	Type          string                 `json:"type"`
	RecipientRole string                 `json:"recipientRole"`
	Payload       map[string]interface{} `json:"payload"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// Publisher is implemented by Client and by test doubles.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		NotificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-deleted
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		AdminReviewQueueName, // name
		true,                 // durable
		false,                // delete when unused
		false,                // exclusive
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		AdminReviewQueueName,  // queue name
		AdminReviewRoutingKey, // routing key
		NotificationExchange,  // exchange
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Publish sends n to the admin review queue as a persistent message.
func (c *Client) Publish(ctx context.Context, n Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	publishing, err := encodePublishing(n)
	if err != nil {
		return err
	}

	err = c.channel.PublishWithContext(ctx,
		NotificationExchange,  // exchange
		AdminReviewRoutingKey, // routing key
		false,                 // mandatory
		false,                 // immediate
		publishing,
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish %s to exchange=%s: %v", n.Type, NotificationExchange, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published %s to exchange=%s, routing_key=%s", n.Type, NotificationExchange, AdminReviewRoutingKey)
	return nil
}

// Consume delivers admin review notifications to handler until the channel
// closes. Malformed messages are dropped. Handler failures are requeued after
// a delay that grows with consecutive failures.
func (c *Client) Consume(handler func(n Notification) error) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	msgs, err := c.channel.Consume(
		AdminReviewQueueName, // queue
		"",                   // consumer
		false,                // auto-ack
		false,                // exclusive
		false,                // no-local
		false,                // no-wait
		nil,                  // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", AdminReviewQueueName)

	cons := newConsumer(handler, c.logger)
	go func() {
		for msg := range msgs {
			cons.process(msg.Body, msg)
		}
	}()

	return nil
}

// Acknowledger is the part of amqp.Delivery the consumer settles messages with.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

const (
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 30 * time.Second
)

type consumer struct {
	handler  func(n Notification) error
	logger   *logger.Logger
	sleep    func(time.Duration)
	failures int
}

func newConsumer(handler func(n Notification) error, log *logger.Logger) *consumer {
	return &consumer{handler: handler, logger: log, sleep: time.Sleep}
}

func (c *consumer) process(body []byte, ack Acknowledger) {
	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		c.logger.Error("[RABBITMQ] Failed to unmarshal notification: %v, body=%s", err, string(body))
		ack.Nack(false, false)
		return
	}

	if err := c.handler(n); err != nil {
		c.failures++
		delay := retryDelay(c.failures)
		c.logger.Error("[RABBITMQ] Handler failed for %s (attempt %d), requeueing in %s: %v", n.Type, c.failures, delay, err)
		c.sleep(delay)
		ack.Nack(false, true)
		return
	}

	c.failures = 0
	ack.Ack(false)
}

// retryDelay doubles from retryBaseDelay per consecutive failure, capped at retryMaxDelay.
func retryDelay(failures int) time.Duration {
	delay := retryBaseDelay
	for i := 1; i < failures && delay < retryMaxDelay; i++ {
		delay *= 2
	}
	if delay > retryMaxDelay {
		delay = retryMaxDelay
	}
	return delay
}

// encodePublishing builds the persistent AMQP message for n.
func encodePublishing(n Notification) (amqp.Publishing, error) {
	body, err := json.Marshal(n)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal notification: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    n.CreatedAt,
		Type:         n.Type,
	}, nil
}
