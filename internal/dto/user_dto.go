package dto

import (
	"time"

	"imbewu-be/internal/entity"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	FullName            string    `json:"full_name"`
	Phone               string    `json:"phone,omitempty"`
	Role                string    `json:"role"`
	Status              string    `json:"status"`
	CulturalAffiliation string    `json:"cultural_affiliation,omitempty"`
	AvatarURL           string    `json:"avatar_url,omitempty"`
	Initials            string    `json:"initials"`
	CreatedAt           time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName            string `json:"full_name" validate:"required,min=3"`
	Phone               string `json:"phone" validate:"omitempty,min=7"`
	CulturalAffiliation string `json:"cultural_affiliation" validate:"omitempty,max=64"`
}

type DashboardStats struct {
	VerifiedProducts     int64 `json:"verified_products"`
	CertificatesEarned   int64 `json:"certificates_earned"`
	UpcomingAppointments int64 `json:"upcoming_appointments"`
	MemberDays           int64 `json:"member_days"`
	UnreadNotifications  int64 `json:"unread_notifications"`
}

type DashboardResponse struct {
	Greeting             string                           `json:"greeting"`
	FullName             string                           `json:"full_name"`
	Stats                DashboardStats                   `json:"stats"`
	UpcomingAppointments []AppointmentResponse            `json:"upcoming_appointments"`
	RecentVerifications  []entity.RecentVerificationEntry `json:"recent_verifications"`
}
