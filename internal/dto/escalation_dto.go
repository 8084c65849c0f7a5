package dto

import "time"

type CreateEscalationRequest struct {
	UserId         string `json:"userId" validate:"required,uuid"`
	ConversationId string `json:"conversationId"`
	Priority       string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Issue          string `json:"issue" validate:"required"`
}

type EscalationReplyRequest struct {
	Message string `json:"message" validate:"required"`
	Sender  string `json:"sender" validate:"required"`
}

type EscalationReplyResponse struct {
	Id           uint      `json:"id"`
	EscalationId uint      `json:"escalationId"`
	Message      string    `json:"message"`
	Sender       string    `json:"sender"`
	Timestamp    time.Time `json:"timestamp"`
}

type EscalationResponse struct {
	Id             uint                      `json:"id"`
	UserId         string                    `json:"userId"`
	ConversationId string                    `json:"conversationId,omitempty"`
	Priority       string                    `json:"priority"`
	Status         string                    `json:"status"`
	Issue          string                    `json:"issue"`
	CreatedAt      time.Time                 `json:"createdAt"`
	ResolvedAt     *time.Time                `json:"resolvedAt,omitempty"`
	Replies        []EscalationReplyResponse `json:"replies"`
}
