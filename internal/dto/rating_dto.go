package dto

import "time"

type CreateRatingRequest struct {
	ConversationId string `json:"conversationId" validate:"required"`
	UserId         string `json:"userId" validate:"required,uuid"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	Comment        string `json:"comment"`
}

type RatingResponse struct {
	Id             uint      `json:"id"`
	ConversationId string    `json:"conversationId"`
	UserId         string    `json:"userId"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	Timestamp      time.Time `json:"timestamp"`
}

type RatingStatsResponse struct {
	Average float64 `json:"average"`
	Total   int64   `json:"total"`
}
