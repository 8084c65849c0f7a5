package entity

import (
	"time"

	"magiars-be/pkg/hours"
)

// BusinessHours is the singleton opening-hours configuration row.
type BusinessHours struct {
	Enabled   bool
	Timezone  string
	Schedule  hours.Schedule
	UpdatedAt time.Time
}

func (b *BusinessHours) ToConfig() hours.Config {
	return hours.Config{
		Enabled:  b.Enabled,
		Timezone: b.Timezone,
		Schedule: b.Schedule,
	}
}
