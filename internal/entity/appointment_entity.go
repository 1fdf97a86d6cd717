// FILE: internal/entity/appointment_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string
type AppointmentType string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"

	AppointmentTypeVideo    AppointmentType = "video"
	AppointmentTypeVoice    AppointmentType = "voice"
	AppointmentTypeInPerson AppointmentType = "in-person"
)

type Appointment struct {
	Id            uuid.UUID
	SeekerId      uuid.UUID
	ContributorId uuid.UUID
	Title         string
	StartTime     time.Time
	EndTime       time.Time
	Type          AppointmentType
	Notes         string
	Status        AppointmentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Cancellable reports whether the appointment is still in a state the
// seeker may cancel.
func (a *Appointment) Cancellable() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusConfirmed
}
