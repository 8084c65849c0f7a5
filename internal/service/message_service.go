package service

import (
	"context"
	"fmt"
	"time"

	"magiars-be/internal/constant"
	"magiars-be/internal/dto"
	"magiars-be/internal/entity"
	"magiars-be/internal/pkg/logger"
	"magiars-be/internal/repository/specification"
	"magiars-be/internal/repository/unitofwork"
	"magiars-be/pkg/chatbot"
	"magiars-be/pkg/intent"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageService interface {
	Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

// messageService routes each inbound message through four terminal branches,
// in strict priority order: out-of-hours, rating intent, escalation intent,
// normal LLM flow. Rating is checked before escalation on purpose.
type messageService struct {
	uowFactory        unitofwork.RepositoryFactory
	chatbot           *chatbot.Client
	hoursService      IBusinessHoursService
	escalationService IEscalationService
	detector          *intent.Detector
	log               logger.ILogger
}

func NewMessageService(
	uowFactory unitofwork.RepositoryFactory,
	chatbotClient *chatbot.Client,
	hoursService IBusinessHoursService,
	escalationService IEscalationService,
	log logger.ILogger,
) IMessageService {
	detector := intent.NewDetector(
		intent.Rule{Intent: intent.IntentRating, Keywords: constant.ClosingKeywords},
		intent.Rule{Intent: intent.IntentEscalation, Keywords: constant.EscalationKeywords},
	)

	return &messageService{
		uowFactory:        uowFactory,
		chatbot:           chatbotClient,
		hoursService:      hoursService,
		escalationService: escalationService,
		detector:          detector,
		log:               log,
	}
}

func (s *messageService) Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	// 1. Out of hours: nothing is persisted, the widget shows a closed notice.
	if !s.hoursService.IsAvailable(ctx) {
		return &dto.SendMessageResponse{
			Reply:          constant.OutOfHoursReply,
			OutOfHours:     true,
			ConversationId: req.ConversationId,
		}, nil
	}

	// 2. Closing phrase: prompt for a rating, nothing is persisted either.
	detected := s.detector.Detect(req.Message)
	if detected == intent.IntentRating {
		return &dto.SendMessageResponse{
			Reply:          constant.RatingPromptReply,
			ShowRating:     true,
			ConversationId: req.ConversationId,
		}, nil
	}

	userId, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}

	conversationKey := req.ConversationId
	if conversationKey == "" {
		conversationKey = "conv-" + uuid.NewString()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	newTitle, err := s.ensureConversation(ctx, uow, userId, conversationKey, req.Message)
	if err != nil {
		return nil, err
	}

	// 3. Human handoff: persist the exchange and open exactly one ticket.
	if detected == intent.IntentEscalation {
		if err := s.saveTurn(ctx, uow, conversationKey, constant.ChatMessageRoleUser, req.Message); err != nil {
			return nil, err
		}
		if _, err := s.escalationService.Create(ctx, &dto.CreateEscalationRequest{
			UserId:         req.UserId,
			ConversationId: conversationKey,
			Priority:       entity.EscalationPriorityMedium,
			Issue:          req.Message,
		}); err != nil {
			return nil, err
		}
		if err := s.saveTurn(ctx, uow, conversationKey, constant.ChatMessageRoleAssistant, constant.EscalationReply); err != nil {
			return nil, err
		}

		return &dto.SendMessageResponse{
			Reply:              constant.EscalationReply,
			RequiresEscalation: true,
			ConversationId:     conversationKey,
			Title:              newTitle,
		}, nil
	}

	// 4. Normal flow.
	if err := s.saveTurn(ctx, uow, conversationKey, constant.ChatMessageRoleUser, req.Message); err != nil {
		return nil, err
	}

	history := toChatHistory(req.ConversationHistory)
	reply := s.chatbot.Reply(ctx, req.Message, history)

	if err := s.saveTurn(ctx, uow, conversationKey, constant.ChatMessageRoleAssistant, reply); err != nil {
		return nil, err
	}

	var category string
	if len(req.ConversationHistory) >= 2 {
		turns := append(history,
			&chatbot.ChatHistory{Chat: req.Message, Role: constant.ChatMessageRoleUser},
			&chatbot.ChatHistory{Chat: reply, Role: constant.ChatMessageRoleAssistant},
		)
		category = s.chatbot.Classify(ctx, turns)
		if err := uow.ConversationRepository().UpdateCategory(ctx, conversationKey, category); err != nil {
			s.log.Warn("messages", "Failed to persist category", map[string]interface{}{
				"conversation_id": conversationKey,
				"error":           err.Error(),
			})
			category = ""
		}
	}

	return &dto.SendMessageResponse{
		Reply:          reply,
		ConversationId: conversationKey,
		Title:          newTitle,
		Category:       category,
	}, nil
}

// ensureConversation creates the conversation row on the first message of a
// session and returns its freshly generated title, or "" when it existed.
func (s *messageService) ensureConversation(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	userId uuid.UUID,
	conversationKey, firstMessage string,
) (string, error) {
	existing, err := uow.ConversationRepository().FindOne(ctx, specification.ByConversationKey{Key: conversationKey})
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", nil
	}

	title := s.chatbot.TitleFor(ctx, firstMessage)
	err = uow.ConversationRepository().Create(ctx, &entity.Conversation{
		UserId:         userId,
		ConversationId: conversationKey,
		Title:          title,
	})
	if err != nil {
		return "", fmt.Errorf("create conversation: %w", err)
	}
	return title, nil
}

func (s *messageService) saveTurn(ctx context.Context, uow unitofwork.UnitOfWork, conversationKey, role, content string) error {
	err := uow.MessageRepository().Create(ctx, &entity.Message{
		ConversationId: conversationKey,
		Role:           role,
		Content:        content,
		Timestamp:      time.Now(),
	})
	if err != nil {
		return err
	}
	return uow.ConversationRepository().Touch(ctx, conversationKey)
}

func toChatHistory(turns []dto.HistoryTurn) []*chatbot.ChatHistory {
	history := make([]*chatbot.ChatHistory, 0, len(turns))
	for _, t := range turns {
		history = append(history, &chatbot.ChatHistory{Chat: t.Content, Role: t.Role})
	}
	return history
}
