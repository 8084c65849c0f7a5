package model

import (
	"time"

	"gorm.io/datatypes"
)

// BusinessHours is a singleton row, always id 1.
type BusinessHours struct {
	Id        uint           `gorm:"primaryKey;check:id = 1"`
	Enabled   bool           `gorm:"default:true"`
	Timezone  string         `gorm:"type:varchar(100);not null;default:'America/Bogota'"`
	Schedule  datatypes.JSON `gorm:"type:json;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (BusinessHours) TableName() string {
	return "business_hours"
}
