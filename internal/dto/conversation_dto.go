package dto

import "time"

type ConversationResponse struct {
	Id             string    `json:"id"`
	UserId         string    `json:"userId"`
	ConversationId string    `json:"conversationId"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type MessageResponse struct {
	Id             uint      `json:"id"`
	ConversationId string    `json:"conversationId"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}
