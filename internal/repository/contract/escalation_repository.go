package contract

import (
	"context"
	"time"

	"magiars-be/internal/entity"
	"magiars-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EscalationRepository interface {
	Create(ctx context.Context, escalation *entity.Escalation) error
	// Resolve marks the ticket resolved at the given instant. Resolving an
	// already-resolved ticket just rewrites resolved_at.
	Resolve(ctx context.Context, id uint, at time.Time) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Escalation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Escalation, error)
	AddReply(ctx context.Context, reply *entity.EscalationReply) error
	FindReplies(ctx context.Context, escalationId uint) ([]*entity.EscalationReply, error)
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
