package contract

import (
	"context"

	"magiars-be/internal/entity"
	"magiars-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	DeleteById(ctx context.Context, id uuid.UUID) error
	DeleteByMetaId(ctx context.Context, metaId string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
