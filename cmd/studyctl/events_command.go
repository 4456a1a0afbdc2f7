package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"neurostudy-be/pkg/events"
	pktNats "neurostudy-be/pkg/nats"

	"github.com/spf13/cobra"
)

// newEventsCommand tails the NATS relay fed by the server's event consumer.
func newEventsCommand(ctx *commandContext) *cobra.Command {
	var (
		eventType string
		durable   string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print relayed domain events from NATS as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ctx.config().App.NatsURL
			if url == "" {
				return errors.New("NATS_URL is not set")
			}

			sub, err := pktNats.NewSubscriber(url)
			if err != nil {
				return err
			}
			defer sub.Close()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return sub.Subscribe(runCtx, eventType, durable, func(_ context.Context, event events.Event) error {
				return writeJSON(cmd, events.BaseEvent{
					Type:       event.EventType(),
					Data:       event.Payload(),
					OccurredAt: event.Timestamp(),
				})
			})
		},
	}

	cmd.Flags().StringVarP(&eventType, "type", "t", "", "Only this event type, e.g. NOTE_CREATED")
	cmd.Flags().StringVar(&durable, "durable", "", "Durable consumer name to resume from")
	return cmd
}
