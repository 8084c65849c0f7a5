package model

import (
	"time"

	"github.com/google/uuid"
)

type Escalation struct {
	Id             uint      `gorm:"primaryKey;autoIncrement"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	ConversationId string    `gorm:"type:varchar(255)"`
	Priority       string    `gorm:"type:varchar(20);not null;default:'medium'"`
	Status         string    `gorm:"type:varchar(20);not null;default:'open';index"`
	Issue          string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	ResolvedAt     *time.Time
}

func (Escalation) TableName() string {
	return "escalations"
}

type EscalationReply struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	EscalationId uint      `gorm:"not null;index"`
	Message      string    `gorm:"type:text;not null"`
	Sender       string    `gorm:"type:varchar(100);not null"`
	Timestamp    time.Time `gorm:"autoCreateTime"`
}

func (EscalationReply) TableName() string {
	return "escalation_replies"
}
