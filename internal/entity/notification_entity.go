// FILE: internal/entity/notification_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationCertificateIssued    NotificationType = "certificate.issued"
	NotificationVerificationRecorded NotificationType = "verification.recorded"
	NotificationAppointmentBooked    NotificationType = "appointment.booked"
	NotificationAppointmentCancelled NotificationType = "appointment.cancelled"
)

type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      NotificationType
	Title     string
	Body      string
	Data      map[string]any
	Read      bool
	CreatedAt time.Time
}
