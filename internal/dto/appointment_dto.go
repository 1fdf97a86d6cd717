package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ContributorId uuid.UUID `json:"contributor_id" validate:"required"`
	Title         string    `json:"title" validate:"required,min=3"`
	Type          string    `json:"type" validate:"required,oneof=video voice in-person"`
	StartTime     time.Time `json:"start_time" validate:"required"`
	EndTime       time.Time `json:"end_time" validate:"required"`
	Notes         string    `json:"notes"`
}

type AppointmentResponse struct {
	Id              uuid.UUID `json:"id"`
	SeekerId        uuid.UUID `json:"seeker_id"`
	ContributorId   uuid.UUID `json:"contributor_id"`
	ContributorName string    `json:"contributor_name,omitempty"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// AppointmentWindow is a conflicting time range, surfaced without the other
// seeker's details.
type AppointmentWindow struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type AvailabilityResponse struct {
	Available bool                `json:"available"`
	Conflicts []AppointmentWindow `json:"conflicts"`
}

type ContributorResponse struct {
	Id                  uuid.UUID `json:"id"`
	FullName            string    `json:"full_name"`
	CulturalAffiliation string    `json:"cultural_affiliation,omitempty"`
	AvatarURL           string    `json:"avatar_url,omitempty"`
	Initials            string    `json:"initials"`
}
