package mapper

import (
	"encoding/json"

	"magiars-be/internal/entity"
	"magiars-be/internal/model"
	"magiars-be/pkg/hours"

	"gorm.io/datatypes"
)

type BusinessHoursMapper struct{}

func NewBusinessHoursMapper() *BusinessHoursMapper {
	return &BusinessHoursMapper{}
}

func (m *BusinessHoursMapper) ToEntity(b *model.BusinessHours) *entity.BusinessHours {
	if b == nil {
		return nil
	}

	schedule := hours.Schedule{}
	if len(b.Schedule) > 0 {
		_ = json.Unmarshal(b.Schedule, &schedule)
	}

	return &entity.BusinessHours{
		Enabled:   b.Enabled,
		Timezone:  b.Timezone,
		Schedule:  schedule,
		UpdatedAt: b.UpdatedAt,
	}
}

func (m *BusinessHoursMapper) ToModel(b *entity.BusinessHours) *model.BusinessHours {
	if b == nil {
		return nil
	}

	raw, _ := json.Marshal(b.Schedule)

	return &model.BusinessHours{
		Id:       1,
		Enabled:  b.Enabled,
		Timezone: b.Timezone,
		Schedule: datatypes.JSON(raw),
	}
}
