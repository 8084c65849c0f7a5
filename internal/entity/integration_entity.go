package entity

import (
	"time"

	"github.com/google/uuid"
)

type Integration struct {
	Id         uint
	UserId     uuid.UUID
	Platform   string
	ApiKey     string
	WebhookUrl string
	IsActive   bool
	Config     map[string]interface{}
	CreatedAt  time.Time
}
