package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is one logical chat session. ConversationId is the
// client-generated correlation key; messages reference it, not Id.
type Conversation struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ConversationId string
	Title          string
	Category       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Message struct {
	Id             uint
	ConversationId string
	Role           string
	Content        string
	Timestamp      time.Time
}
