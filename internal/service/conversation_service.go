package service

import (
	"context"

	"magiars-be/internal/dto"
	"magiars-be/internal/repository/specification"
	"magiars-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConversationService interface {
	ListByUser(ctx context.Context, userId string) ([]dto.ConversationResponse, error)
	ListMessages(ctx context.Context, conversationKey string) ([]dto.MessageResponse, error)
	Delete(ctx context.Context, conversationKey string) error
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory) IConversationService {
	return &conversationService{uowFactory: uowFactory}
}

func (s *conversationService) ListByUser(ctx context.Context, userId string) ([]dto.ConversationResponse, error) {
	id, err := uuid.Parse(userId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.ByUserId{UserId: id},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		responses = append(responses, dto.ConversationResponse{
			Id:             conv.Id.String(),
			UserId:         conv.UserId.String(),
			ConversationId: conv.ConversationId,
			Title:          conv.Title,
			Category:       conv.Category,
			CreatedAt:      conv.CreatedAt,
			UpdatedAt:      conv.UpdatedAt,
		})
	}
	return responses, nil
}

func (s *conversationService) ListMessages(ctx context.Context, conversationKey string) ([]dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationKey{Key: conversationKey},
		specification.OrderBy{Field: "timestamp"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, dto.MessageResponse{
			Id:             msg.Id,
			ConversationId: msg.ConversationId,
			Role:           msg.Role,
			Content:        msg.Content,
			Timestamp:      msg.Timestamp,
		})
	}
	return responses, nil
}

// Delete removes the conversation together with its messages and ratings.
func (s *conversationService) Delete(ctx context.Context, conversationKey string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().DeleteAllByConversationKey(ctx, conversationKey); err != nil {
		return err
	}
	if err := uow.RatingRepository().DeleteAllByConversationKey(ctx, conversationKey); err != nil {
		return err
	}
	if err := uow.ConversationRepository().DeleteByConversationKey(ctx, conversationKey); err != nil {
		return err
	}

	return uow.Commit()
}
