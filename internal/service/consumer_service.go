package service

import (
	"context"
	"encoding/json"

	"magiars-be/internal/pkg/logger"
	"magiars-be/internal/pkg/mailer"
	"magiars-be/internal/repository/specification"
	"magiars-be/internal/repository/unitofwork"
	"magiars-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains escalation-created events and notifies the support
// inbox. Notification failures are logged only; the ticket is already stored.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		uowFactory:   uowFactory,
		emailService: emailService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicEscalationCreated)
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
	defer msg.Ack()

	var event events.EscalationCreated
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.log.Error("escalation_consumer", "Invalid event payload", map[string]interface{}{"error": err.Error()})
		return
	}

	userName := "desconocido"
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.Filter("id", event.UserId))
	if err == nil && user != nil {
		userName = user.Name
	}

	if err := cs.emailService.SendEscalationNotice(event.EscalationId, userName, event.Issue, event.Priority); err != nil {
		cs.log.Warn("escalation_consumer", "Could not notify support inbox", map[string]interface{}{
			"escalation_id": event.EscalationId,
			"error":         err.Error(),
		})
		return
	}

	cs.log.Info("escalation_consumer", "Support inbox notified", map[string]interface{}{
		"escalation_id": event.EscalationId,
	})
}
