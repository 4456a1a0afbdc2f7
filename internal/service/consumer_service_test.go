package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"neurostudy-be/internal/pkg/logger"
	"neurostudy-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type chanSink struct {
	got chan events.Event
	err error
}

func (s *chanSink) Publish(ctx context.Context, event events.Event) error {
	s.got <- event
	return s.err
}

func TestConsumerRelaysPublishedEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	core, logs := observer.New(zap.DebugLevel)
	healthy := &chanSink{got: make(chan events.Event, 1)}
	failing := &chanSink{got: make(chan events.Event, 1), err: errors.New("nats down")}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	consumer := NewConsumerService(pubSub, "test.events", logger.NewWithCore(core), healthy, failing)
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("test.events", pubSub)
	sent := events.New(events.TypeNoteCreated, map[string]interface{}{"title": "Kinetics"})
	require.NoError(t, publisher.Publish(ctx, sent))

	for _, sink := range []*chanSink{healthy, failing} {
		select {
		case got := <-sink.got:
			assert.Equal(t, events.TypeNoteCreated, got.EventType())
			assert.Equal(t, "Kinetics", got.Payload()["title"])
			assert.True(t, sent.Timestamp().Equal(got.Timestamp()))
		case <-time.After(2 * time.Second):
			t.Fatal("event was not relayed")
		}
	}

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("Failed to relay event").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, logs.FilterMessage(events.TypeNoteCreated).Len())
}
