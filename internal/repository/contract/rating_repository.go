package contract

import (
	"context"

	"magiars-be/internal/entity"
	"magiars-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rating, error)
	// Stats aggregates AVG and COUNT, optionally scoped to one user.
	Stats(ctx context.Context, userId *uuid.UUID) (*entity.RatingStats, error)
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	DeleteAllByConversationKey(ctx context.Context, conversationKey string) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
