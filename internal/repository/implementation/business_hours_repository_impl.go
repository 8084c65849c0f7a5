package implementation

import (
	"context"
	"errors"

	"magiars-be/internal/entity"
	"magiars-be/internal/mapper"
	"magiars-be/internal/model"
	"magiars-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BusinessHoursRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BusinessHoursMapper
}

func NewBusinessHoursRepository(db *gorm.DB) contract.BusinessHoursRepository {
	return &BusinessHoursRepositoryImpl{
		db:     db,
		mapper: mapper.NewBusinessHoursMapper(),
	}
}

func (r *BusinessHoursRepositoryImpl) Get(ctx context.Context) (*entity.BusinessHours, error) {
	var m model.BusinessHours
	if err := r.db.WithContext(ctx).Where("id = 1").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BusinessHoursRepositoryImpl) Upsert(ctx context.Context, config *entity.BusinessHours) error {
	m := r.mapper.ToModel(config)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "timezone", "schedule", "updated_at"}),
		}).
		Create(m).Error
}
