package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	EscalationStatusOpen     = "open"
	EscalationStatusResolved = "resolved"

	EscalationPriorityLow    = "low"
	EscalationPriorityMedium = "medium"
	EscalationPriorityHigh   = "high"
)

// Escalation is a ticket requesting human takeover of a conversation.
// Status only ever moves open -> resolved.
type Escalation struct {
	Id             uint
	UserId         uuid.UUID
	ConversationId string
	Priority       string
	Status         string
	Issue          string
	CreatedAt      time.Time
	ResolvedAt     *time.Time
	Replies        []*EscalationReply
}

type EscalationReply struct {
	Id           uint
	EscalationId uint
	Message      string
	Sender       string
	Timestamp    time.Time
}
