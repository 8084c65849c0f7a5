package implementation

import (
	"context"

	"magiars-be/internal/entity"
	"magiars-be/internal/mapper"
	"magiars-be/internal/model"
	"magiars-be/internal/repository/contract"
	"magiars-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RatingMapper
}

func NewRatingRepository(db *gorm.DB) contract.RatingRepository {
	return &RatingRepositoryImpl{
		db:     db,
		mapper: mapper.NewRatingMapper(),
	}
}

func (r *RatingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RatingRepositoryImpl) Create(ctx context.Context, rating *entity.Rating) error {
	m := r.mapper.ToModel(rating)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rating = *r.mapper.ToEntity(m)
	return nil
}

func (r *RatingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rating, error) {
	var models []*model.Rating
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Rating, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *RatingRepositoryImpl) Stats(ctx context.Context, userId *uuid.UUID) (*entity.RatingStats, error) {
	var result struct {
		Average *float64
		Total   int64
	}
	query := r.db.WithContext(ctx).Model(&model.Rating{}).
		Select("AVG(rating) as average, COUNT(*) as total")
	if userId != nil {
		query = query.Where("user_id = ?", *userId)
	}
	if err := query.Scan(&result).Error; err != nil {
		return nil, err
	}

	stats := &entity.RatingStats{Total: result.Total}
	if result.Average != nil {
		stats.Average = *result.Average
	}
	return stats, nil
}

func (r *RatingRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Rating{}).Error
}

func (r *RatingRepositoryImpl) DeleteAllByConversationKey(ctx context.Context, conversationKey string) error {
	return r.db.WithContext(ctx).Where("conversation_id = ?", conversationKey).Delete(&model.Rating{}).Error
}

func (r *RatingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Rating{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
