package service

import (
	"context"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/events"
	natsevents "medinfo-be/pkg/nats"
)

const activityDurableName = "medinfo-activity"

type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler natsevents.EventHandler) error
}

// IActivityService records domain events into the activity log.
type IActivityService interface {
	Start(ctx context.Context) error
	Handle(ctx context.Context, event events.Event) error
}

type activityService struct {
	subscriber  EventSubscriber
	activityLog logger.ILogger
}

func NewActivityService(subscriber EventSubscriber, activityLog logger.ILogger) IActivityService {
	return &activityService{
		subscriber:  subscriber,
		activityLog: activityLog,
	}
}

func (s *activityService) Start(ctx context.Context) error {
	return s.subscriber.Subscribe(ctx, natsevents.SubjectPrefix+">", activityDurableName, s.Handle)
}

func (s *activityService) Handle(ctx context.Context, event events.Event) error {
	details := map[string]interface{}{
		"type":        event.EventType(),
		"occurred_at": event.Timestamp(),
	}
	for k, v := range event.Payload() {
		details[k] = v
	}

	switch event.EventType() {
	case events.TypeUserRegistered:
		s.activityLog.Info("Activity", "User registered", details)
	case events.TypeMedicineSaved:
		s.activityLog.Info("Activity", "Medicine saved", details)
	default:
		s.activityLog.Debug("Activity", "Unhandled event", details)
	}
	return nil
}
