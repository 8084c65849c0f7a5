package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Integration struct {
	Id         uint           `gorm:"primaryKey;autoIncrement"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Platform   string         `gorm:"type:varchar(100);not null"`
	ApiKey     string         `gorm:"type:text"`
	WebhookUrl string         `gorm:"type:text"`
	IsActive   bool           `gorm:"default:true"`
	Config     datatypes.JSON `gorm:"type:json"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (Integration) TableName() string {
	return "integrations"
}
