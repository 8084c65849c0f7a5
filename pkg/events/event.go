package events

import (
	"time"

	"github.com/google/uuid"
)

const TopicEscalationCreated = "ESCALATION_CREATED"

// EscalationCreated is published when a support ticket is opened, either
// from the ticketing API or by the message router's keyword handoff.
type EscalationCreated struct {
	EscalationId   uint      `json:"escalation_id"`
	UserId         uuid.UUID `json:"user_id"`
	ConversationId string    `json:"conversation_id,omitempty"`
	Priority       string    `json:"priority"`
	Issue          string    `json:"issue"`
	OccurredAt     time.Time `json:"occurred_at"`
}
