package contract

import (
	"context"

	"magiars-be/internal/entity"
	"magiars-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	UpdateTitle(ctx context.Context, conversationKey, title string) error
	UpdateCategory(ctx context.Context, conversationKey, category string) error
	// Touch bumps updated_at, called on every message append.
	Touch(ctx context.Context, conversationKey string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
	DeleteByConversationKey(ctx context.Context, conversationKey string) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	DeleteAllByConversationKey(ctx context.Context, conversationKey string) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
