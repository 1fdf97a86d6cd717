// FILE: internal/entity/user_entity.go
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleSeeker      UserRole = "seeker"
	UserRoleContributor UserRole = "contributor"
	UserRoleModerator   UserRole = "moderator"

	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id                  uuid.UUID
	Email               string
	PasswordHash        *string
	FullName            string
	Phone               string
	Role                UserRole
	Status              UserStatus
	CulturalAffiliation string
	AvatarURL           *string
	TermsAgreed         bool
	EthicsAgreed        bool
	NewsletterAgreed    bool
	IsVerified          bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Initials derives the avatar fallback from the full name: first letter of
// the first and last words, uppercased; "?" when the name is empty.
func (u *User) Initials() string {
	name := strings.TrimSpace(u.FullName)
	if name == "" {
		return "?"
	}
	parts := strings.Fields(name)
	if len(parts) == 1 {
		return strings.ToUpper(parts[0][:1])
	}
	return strings.ToUpper(parts[0][:1] + parts[len(parts)-1][:1])
}
