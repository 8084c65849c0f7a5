package implementation

import (
	"context"
	"errors"

	"magiars-be/internal/entity"
	"magiars-be/internal/mapper"
	"magiars-be/internal/model"
	"magiars-be/internal/repository/contract"
	"magiars-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IntegrationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IntegrationMapper
}

func NewIntegrationRepository(db *gorm.DB) contract.IntegrationRepository {
	return &IntegrationRepositoryImpl{
		db:     db,
		mapper: mapper.NewIntegrationMapper(),
	}
}

func (r *IntegrationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *IntegrationRepositoryImpl) Create(ctx context.Context, integration *entity.Integration) error {
	m := r.mapper.ToModel(integration)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*integration = *r.mapper.ToEntity(m)
	return nil
}

func (r *IntegrationRepositoryImpl) Update(ctx context.Context, integration *entity.Integration) error {
	m := r.mapper.ToModel(integration)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*integration = *r.mapper.ToEntity(m)
	return nil
}

func (r *IntegrationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Integration{}, id).Error
}

func (r *IntegrationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Integration, error) {
	var m model.Integration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *IntegrationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Integration, error) {
	var models []*model.Integration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Integration, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *IntegrationRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Integration{}).Error
}

func (r *IntegrationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Integration{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
