package contract

import (
	"context"

	"magiars-be/internal/entity"
)

type BusinessHoursRepository interface {
	// Get returns the singleton row, or nil when it was never configured.
	Get(ctx context.Context) (*entity.BusinessHours, error)
	Upsert(ctx context.Context, config *entity.BusinessHours) error
}
