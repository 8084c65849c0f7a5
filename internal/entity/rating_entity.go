package entity

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	Id             uint
	ConversationId string
	UserId         uuid.UUID
	Rating         int
	Comment        string
	Timestamp      time.Time
}

// RatingStats is the aggregate over a rating set.
type RatingStats struct {
	Average float64
	Total   int64
}
