package service

import (
	"context"
	"encoding/json"

	"neurostudy-be/internal/pkg/logger"
	"neurostudy-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventSink receives every consumed event; pkg/nats.Publisher is one.
type EventSink interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	logger     logger.ILogger
	sinks      []EventSink
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	log logger.ILogger,
	sinks ...EventSink,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		logger:     log,
		sinks:      sinks,
	}
}

// Consume subscribes synchronously and then drains in the background until ctx ends.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("EVENTS", "Failed to unmarshal event", map[string]interface{}{"error": err.Error(), "uuid": msg.UUID})
		msg.Ack() // a bad payload never gets better
		return
	}

	cs.logger.Info("EVENTS", event.Type, event.Data)

	// Relay failures are logged, not retried; gochannel redelivers a Nack immediately.
	for _, sink := range cs.sinks {
		if err := sink.Publish(msg.Context(), event); err != nil {
			cs.logger.Warn("EVENTS", "Failed to relay event", map[string]interface{}{"type": event.Type, "error": err.Error()})
		}
	}

	msg.Ack()
}

// publishEvent never fails the caller: events are auxiliary to the row that was written.
func publishEvent(ctx context.Context, publisher IPublisherService, log logger.ILogger, event events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("EVENTS", "Failed to publish event", map[string]interface{}{"type": event.EventType(), "error": err.Error()})
	}
}
