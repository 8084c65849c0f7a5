package dto

import "magiars-be/pkg/hours"

type UpdateBusinessHoursRequest struct {
	Enabled  bool           `json:"enabled"`
	Timezone string         `json:"timezone" validate:"required"`
	Schedule hours.Schedule `json:"schedule" validate:"required"`
}

type BusinessHoursResponse struct {
	Enabled  bool           `json:"enabled"`
	Timezone string         `json:"timezone"`
	Schedule hours.Schedule `json:"schedule"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
