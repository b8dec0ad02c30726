package queue

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"

	"github.com/taemotherlode01/ministore-api/internal/model"
	"github.com/taemotherlode01/ministore-api/internal/obs"
)

// AMQPQueue publishes and consumes record events through RabbitMQ using the
// default exchange, one durable queue per topic.
type AMQPQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
}

// DialAMQP connects to RabbitMQ and declares the record events queue.
func DialAMQP(url string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	q := &AMQPQueue{conn: conn, ch: ch}
	if err := q.declare(TopicRecordEvents); err != nil {
		q.Close()
		return nil, err
	}
	return q, nil
}

func (q *AMQPQueue) declare(topic string) error {
	_, err := q.ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", topic, err)
	}
	return nil
}

// Publish sends ev as a persistent JSON message routed to topic.
func (q *AMQPQueue) Publish(topic string, ev model.RecordEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.ID,
			Timestamp:    ev.OccurredAt,
			Type:         ev.Topic(),
			Body:         body,
		},
	)
}

// Subscribe consumes topic with manual acks and feeds handler in a goroutine.
func (q *AMQPQueue) Subscribe(topic string, handler Handler) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.declare(topic); err != nil {
		return err
	}
	msgs, err := q.ch.Consume(
		topic,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}
	go func() {
		for d := range msgs {
			handleDelivery(d, handler)
		}
		obs.Logger.Info("consumer stopped", "topic", topic)
	}()
	return nil
}

// handleDelivery acks malformed messages so they are not redelivered forever,
// and requeues a failed message once before dropping it.
func handleDelivery(d amqp.Delivery, handler Handler) {
	var ev model.RecordEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		obs.Logger.Warn("dropping malformed event", "message_id", d.MessageId, "error", err)
		_ = d.Ack(false)
		return
	}
	if err := handler(ev); err != nil {
		obs.Logger.Warn("event handler failed", "event_id", ev.ID, "redelivered", d.Redelivered, "error", err)
		_ = d.Nack(false, !d.Redelivered)
		return
	}
	_ = d.Ack(false)
}

// Close shuts the channel and connection.
func (q *AMQPQueue) Close() error {
	if q.ch != nil {
		_ = q.ch.Close()
	}
	if q.conn != nil {
		return q.conn.Close()
	}
	return nil
}

var _ Queue = (*AMQPQueue)(nil)
