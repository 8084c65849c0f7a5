package model

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	Id             uint      `gorm:"primaryKey;autoIncrement"`
	ConversationId string    `gorm:"type:varchar(255);not null;index"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating         int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment        string    `gorm:"type:text"`
	Timestamp      time.Time `gorm:"autoCreateTime"`
}

func (Rating) TableName() string {
	return "ratings"
}
