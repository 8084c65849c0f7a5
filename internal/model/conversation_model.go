package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Conversation struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	ConversationId string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title          string    `gorm:"type:text"`
	Category       string    `gorm:"type:varchar(100)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	return nil
}

// Message rows hang off the conversation correlation key, not the row id.
type Message struct {
	Id             uint      `gorm:"primaryKey;autoIncrement"`
	ConversationId string    `gorm:"type:varchar(255);not null;index"`
	Role           string    `gorm:"type:varchar(20);not null"`
	Content        string    `gorm:"type:text;not null"`
	Timestamp      time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
