package contract

import (
	"context"

	"magiars-be/internal/entity"
	"magiars-be/internal/repository/specification"

	"github.com/google/uuid"
)

type IntegrationRepository interface {
	Create(ctx context.Context, integration *entity.Integration) error
	Update(ctx context.Context, integration *entity.Integration) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Integration, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Integration, error)
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
