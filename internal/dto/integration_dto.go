package dto

import "time"

type CreateIntegrationRequest struct {
	UserId     string                 `json:"userId" validate:"required,uuid"`
	Platform   string                 `json:"platform" validate:"required"`
	ApiKey     string                 `json:"apiKey"`
	WebhookUrl string                 `json:"webhookUrl" validate:"omitempty,url"`
	Config     map[string]interface{} `json:"config"`
}

type UpdateIntegrationRequest struct {
	Platform   string                 `json:"platform" validate:"required"`
	ApiKey     string                 `json:"apiKey"`
	WebhookUrl string                 `json:"webhookUrl" validate:"omitempty,url"`
	IsActive   bool                   `json:"isActive"`
	Config     map[string]interface{} `json:"config"`
}

type IntegrationResponse struct {
	Id         uint                   `json:"id"`
	UserId     string                 `json:"userId"`
	Platform   string                 `json:"platform"`
	ApiKey     string                 `json:"apiKey"`
	WebhookUrl string                 `json:"webhookUrl"`
	IsActive   bool                   `json:"isActive"`
	Config     map[string]interface{} `json:"config"`
	CreatedAt  time.Time              `json:"createdAt"`
}

type TestConnectionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
