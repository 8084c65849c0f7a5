package mapper

import (
	"magiars-be/internal/entity"
	"magiars-be/internal/model"
)

type RatingMapper struct{}

func NewRatingMapper() *RatingMapper {
	return &RatingMapper{}
}

func (m *RatingMapper) ToEntity(r *model.Rating) *entity.Rating {
	if r == nil {
		return nil
	}
	return &entity.Rating{
		Id:             r.Id,
		ConversationId: r.ConversationId,
		UserId:         r.UserId,
		Rating:         r.Rating,
		Comment:        r.Comment,
		Timestamp:      r.Timestamp,
	}
}

func (m *RatingMapper) ToModel(r *entity.Rating) *model.Rating {
	if r == nil {
		return nil
	}
	return &model.Rating{
		Id:             r.Id,
		ConversationId: r.ConversationId,
		UserId:         r.UserId,
		Rating:         r.Rating,
		Comment:        r.Comment,
		Timestamp:      r.Timestamp,
	}
}
