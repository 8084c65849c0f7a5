package service

import (
	"context"
	"time"

	"magiars-be/internal/dto"
	"magiars-be/internal/entity"
	"magiars-be/internal/pkg/logger"
	"magiars-be/internal/repository/specification"
	"magiars-be/internal/repository/unitofwork"
	"magiars-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EscalationFilters struct {
	UserId *uuid.UUID
	Status string
}

type IEscalationService interface {
	Create(ctx context.Context, req *dto.CreateEscalationRequest) (*dto.EscalationResponse, error)
	List(ctx context.Context, filters EscalationFilters) ([]*dto.EscalationResponse, error)
	Reply(ctx context.Context, id uint, req *dto.EscalationReplyRequest) error
	Resolve(ctx context.Context, id uint) error
}

type escalationService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	log        logger.ILogger
}

func NewEscalationService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) IEscalationService {
	return &escalationService{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
	}
}

func (s *escalationService) Create(ctx context.Context, req *dto.CreateEscalationRequest) (*dto.EscalationResponse, error) {
	userId, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}

	escalation := &entity.Escalation{
		UserId:         userId,
		ConversationId: req.ConversationId,
		Priority:       req.Priority,
		Status:         entity.EscalationStatusOpen,
		Issue:          req.Issue,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EscalationRepository().Create(ctx, escalation); err != nil {
		return nil, err
	}

	// Notification is best effort; the ticket row is the source of truth.
	if err := s.publisher.PublishEscalationCreated(ctx, &events.EscalationCreated{
		EscalationId:   escalation.Id,
		UserId:         escalation.UserId,
		ConversationId: escalation.ConversationId,
		Priority:       escalation.Priority,
		Issue:          escalation.Issue,
		OccurredAt:     time.Now(),
	}); err != nil {
		s.log.Warn("escalation", "Failed to publish escalation event", map[string]interface{}{
			"escalation_id": escalation.Id,
			"error":         err.Error(),
		})
	}

	s.log.Info("escalation", "Escalation created", map[string]interface{}{
		"escalation_id": escalation.Id,
		"user_id":       escalation.UserId.String(),
	})

	return toEscalationResponse(escalation, nil), nil
}

func (s *escalationService) List(ctx context.Context, filters EscalationFilters) ([]*dto.EscalationResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if filters.UserId != nil {
		specs = append(specs, specification.ByUserId{UserId: *filters.UserId})
	}
	if filters.Status != "" {
		specs = append(specs, specification.ByStatus{Status: filters.Status})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	escalations, err := uow.EscalationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EscalationResponse, 0, len(escalations))
	for _, esc := range escalations {
		replies, err := uow.EscalationRepository().FindReplies(ctx, esc.Id)
		if err != nil {
			return nil, err
		}
		responses = append(responses, toEscalationResponse(esc, replies))
	}
	return responses, nil
}

func (s *escalationService) Reply(ctx context.Context, id uint, req *dto.EscalationReplyRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	escalation, err := uow.EscalationRepository().FindOne(ctx, specification.Filter("id", id))
	if err != nil {
		return err
	}
	if escalation == nil {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	}

	return uow.EscalationRepository().AddReply(ctx, &entity.EscalationReply{
		EscalationId: id,
		Message:      req.Message,
		Sender:       req.Sender,
	})
}

func (s *escalationService) Resolve(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	escalation, err := uow.EscalationRepository().FindOne(ctx, specification.Filter("id", id))
	if err != nil {
		return err
	}
	if escalation == nil {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	}

	// One-way transition; re-resolving just rewrites resolved_at.
	return uow.EscalationRepository().Resolve(ctx, id, time.Now())
}

func toEscalationResponse(esc *entity.Escalation, replies []*entity.EscalationReply) *dto.EscalationResponse {
	res := &dto.EscalationResponse{
		Id:             esc.Id,
		UserId:         esc.UserId.String(),
		ConversationId: esc.ConversationId,
		Priority:       esc.Priority,
		Status:         esc.Status,
		Issue:          esc.Issue,
		CreatedAt:      esc.CreatedAt,
		ResolvedAt:     esc.ResolvedAt,
		Replies:        make([]dto.EscalationReplyResponse, 0, len(replies)),
	}
	for _, r := range replies {
		res.Replies = append(res.Replies, dto.EscalationReplyResponse{
			Id:           r.Id,
			EscalationId: r.EscalationId,
			Message:      r.Message,
			Sender:       r.Sender,
			Timestamp:    r.Timestamp,
		})
	}
	return res
}
