package mapper

import (
	"encoding/json"

	"magiars-be/internal/entity"
	"magiars-be/internal/model"

	"gorm.io/datatypes"
)

type IntegrationMapper struct{}

func NewIntegrationMapper() *IntegrationMapper {
	return &IntegrationMapper{}
}

func (m *IntegrationMapper) ToEntity(i *model.Integration) *entity.Integration {
	if i == nil {
		return nil
	}

	config := map[string]interface{}{}
	if len(i.Config) > 0 {
		// Malformed config falls back to the empty map rather than failing.
		_ = json.Unmarshal(i.Config, &config)
	}

	return &entity.Integration{
		Id:         i.Id,
		UserId:     i.UserId,
		Platform:   i.Platform,
		ApiKey:     i.ApiKey,
		WebhookUrl: i.WebhookUrl,
		IsActive:   i.IsActive,
		Config:     config,
		CreatedAt:  i.CreatedAt,
	}
}

func (m *IntegrationMapper) ToModel(i *entity.Integration) *model.Integration {
	if i == nil {
		return nil
	}

	config := i.Config
	if config == nil {
		config = map[string]interface{}{}
	}
	raw, _ := json.Marshal(config)

	return &model.Integration{
		Id:         i.Id,
		UserId:     i.UserId,
		Platform:   i.Platform,
		ApiKey:     i.ApiKey,
		WebhookUrl: i.WebhookUrl,
		IsActive:   i.IsActive,
		Config:     datatypes.JSON(raw),
		CreatedAt:  i.CreatedAt,
	}
}
