// Package rabbitmq publishes domain events to a RabbitMQ topic exchange.
// Events ride an envelope of {source, detailType, detail};
// the routing key is the detail type, so consumers bind per event kind.
package rabbitmq

import (
	"context"
	"encoding/json"

	"ordermanager/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Envelope is the wire form of one published event.
type Envelope struct {
	Source     string          `json:"source"`
	DetailType string          `json:"detailType"`
	Detail     json.RawMessage `json:"detail"`
}

// Channel is the slice of *amqp.Channel the bus needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// EventBus implements ports.EventBus over a RabbitMQ topic exchange. The
// event source is bound once at construction; flows only name the detail
// type and payload.
type EventBus struct {
	channel  Channel
	exchange string
	source   string
}

// NewEventBus declares the topic exchange and returns a bus publishing to it.
func NewEventBus(channel Channel, exchange, source string) (*EventBus, error) {
	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, errs.NewCollaboratorUnavailableError("event bus", err)
	}

	return &EventBus{channel: channel, exchange: exchange, source: source}, nil
}

// Publish emits one domain event. Delivery is persistent; downstream
// consumers own deduplication.
func (b *EventBus) Publish(ctx context.Context, detailType string, detail any) error {
	body, err := marshalEnvelope(b.source, detailType, detail)
	if err != nil {
		return err
	}

	err = b.channel.PublishWithContext(ctx,
		b.exchange, detailType, false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return errs.NewCollaboratorUnavailableError("event bus", err)
	}

	return nil
}

func marshalEnvelope(source, detailType string, detail any) ([]byte, error) {
	rawDetail, err := json.Marshal(detail)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("detail", err)
	}

	return json.Marshal(Envelope{
		Source:     source,
		DetailType: detailType,
		Detail:     rawDetail,
	})
}
