package service

import (
	"context"
	"errors"

	"procure-ai-be/internal/pkg/logger"
	"procure-ai-be/pkg/events"
	pktNats "procure-ai-be/pkg/nats"
)

type IAuditService interface {
	// Start attaches a durable consumer to the event stream and records
	// every domain event in the structured log.
	Start() error
}

const auditDurableName = "procure-audit-log"

// auditService is the audit trail: everything published to the event bus
// (registrations, logins, completed plans) ends up as a log entry, so the
// stream can be reconstructed from the log file alone.
type auditService struct {
	subscriber *pktNats.Subscriber
	log        logger.ILogger
}

func NewAuditService(subscriber *pktNats.Subscriber, log logger.ILogger) IAuditService {
	return &auditService{
		subscriber: subscriber,
		log:        log,
	}
}

func (s *auditService) Start() error {
	if s.subscriber == nil {
		return errors.New("audit service has no event subscriber")
	}
	return s.subscriber.Subscribe(pktNats.SubjectAll, auditDurableName, s.recordEvent)
}

func (s *auditService) recordEvent(_ context.Context, event events.Event) error {
	details := map[string]interface{}{
		"occurred_at": event.Timestamp(),
	}
	for k, v := range event.Payload() {
		details[k] = v
	}
	s.log.Info("audit", event.EventType(), details)
	return nil
}
