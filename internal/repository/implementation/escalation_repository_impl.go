package implementation

import (
	"context"
	"errors"
	"time"

	"magiars-be/internal/entity"
	"magiars-be/internal/mapper"
	"magiars-be/internal/model"
	"magiars-be/internal/repository/contract"
	"magiars-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EscalationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EscalationMapper
}

func NewEscalationRepository(db *gorm.DB) contract.EscalationRepository {
	return &EscalationRepositoryImpl{
		db:     db,
		mapper: mapper.NewEscalationMapper(),
	}
}

func (r *EscalationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EscalationRepositoryImpl) Create(ctx context.Context, escalation *entity.Escalation) error {
	m := r.mapper.ToModel(escalation)
	if m.Priority == "" {
		m.Priority = entity.EscalationPriorityMedium
	}
	if m.Status == "" {
		m.Status = entity.EscalationStatusOpen
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	replies := escalation.Replies
	*escalation = *r.mapper.ToEntity(m)
	escalation.Replies = replies
	return nil
}

func (r *EscalationRepositoryImpl) Resolve(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Escalation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      entity.EscalationStatusResolved,
			"resolved_at": at,
		}).Error
}

func (r *EscalationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Escalation, error) {
	var m model.Escalation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EscalationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Escalation, error) {
	var models []*model.Escalation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Escalation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *EscalationRepositoryImpl) AddReply(ctx context.Context, reply *entity.EscalationReply) error {
	m := r.mapper.ReplyToModel(reply)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*reply = *r.mapper.ReplyToEntity(m)
	return nil
}

func (r *EscalationRepositoryImpl) FindReplies(ctx context.Context, escalationId uint) ([]*entity.EscalationReply, error) {
	var models []*model.EscalationReply
	err := r.db.WithContext(ctx).
		Where("escalation_id = ?", escalationId).
		Order("timestamp ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	replies := make([]*entity.EscalationReply, len(models))
	for i, m := range models {
		replies[i] = r.mapper.ReplyToEntity(m)
	}
	return replies, nil
}

func (r *EscalationRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("escalation_id IN (?)",
			r.db.Model(&model.Escalation{}).Select("id").Where("user_id = ?", userId)).
		Delete(&model.EscalationReply{}).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Escalation{}).Error
}

func (r *EscalationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Escalation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
