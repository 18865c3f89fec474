package mq

import (
	"encoding/json"
	"fmt"
	"sync"

	"agrivision/internal/models"

	"github.com/streadway/amqp"
)

// ActivityQueue is the durable queue carrying activity-created events from
// the submission path to the aggregation worker.
const ActivityQueue = "carbon.activity.created"

// ActivityPublisher hands newly persisted activities to the aggregation
// pipeline.
type ActivityPublisher interface {
	PublishActivityCreated(event models.ActivityEvent) error
	Close() error
}

type rabbitPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex
}

// NewActivityPublisher connects to RabbitMQ and declares the activity queue.
func NewActivityPublisher(url string) (ActivityPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		ActivityQueue, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &rabbitPublisher{conn: conn, channel: channel}, nil
}

// PublishActivityCreated publishes one persistent event. A lost publish is
// not fatal to the submission; the reconciliation sweep republishes
// unaggregated activities.
func (p *rabbitPublisher) PublishActivityCreated(event models.ActivityEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish(
		"",            // exchange
		ActivityQueue, // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish activity event: %w", err)
	}

	return nil
}

func (p *rabbitPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
