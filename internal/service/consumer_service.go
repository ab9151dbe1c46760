package service

import (
	"context"
	"encoding/json"
	"log"

	"procure-ai-be/internal/dto"
	"procure-ai-be/internal/pkg/mailer"
	"procure-ai-be/internal/repository/specification"
	"procure-ai-be/internal/repository/unitofwork"
	"procure-ai-be/pkg/events"
	pktNats "procure-ai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains finished procurement plans off the in-process bus:
// it emails the plan summary to the owner and fans the event out over NATS.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PlanCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal plan message: %v", err)
		msg.Ack() // invalid payloads would retry forever
		return
	}

	log.Printf("[INFO] Processing completed plan for session %s", payload.ChatSessionId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to load user %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}
	if user == nil {
		log.Printf("[WARN] User %s no longer exists, dropping plan message", payload.UserId)
		msg.Ack()
		return
	}

	if cs.emailService != nil {
		if err := cs.emailService.SendPlanSummary(user.Email, &payload.Plan); err != nil {
			log.Printf("[ERROR] Failed to email plan summary to %s: %v", user.Email, err)
			// Email failure is not worth replaying the whole message.
		}
	}

	if cs.eventPublisher != nil {
		var planData map[string]interface{}
		if raw, err := json.Marshal(payload.Plan); err == nil {
			_ = json.Unmarshal(raw, &planData)
		}
		event := events.NewPlanCompleted(payload.UserId.String(), payload.ChatSessionId.String(), planData)
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			log.Printf("[ERROR] Failed to publish plan completed event: %v", err)
		}
	}

	log.Printf("[SUCCESS] Plan for session %s processed", payload.ChatSessionId)
	msg.Ack()
}
