package service

import (
	"context"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/events"
)

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, event events.Event) error { return nil }

// NoopPublisher is used when no broker is configured.
func NoopPublisher() EventPublisher {
	return noopPublisher{}
}

// publishAsync never blocks the request path; failures are only logged.
func publishAsync(pub EventPublisher, log logger.ILogger, event events.Event) {
	go func() {
		if err := pub.Publish(context.Background(), event); err != nil {
			log.Warn("Events", "Failed to publish event", map[string]interface{}{
				"type":  event.EventType(),
				"error": err.Error(),
			})
		}
	}()
}
