package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	MetaId    string
	Name      string
	Email     string
	Avatar    string
	LoginDate time.Time
	CreatedAt time.Time
}
