package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash        *string   `gorm:"type:varchar(255)"`
	FullName            string    `gorm:"type:varchar(255);not null"`
	Phone               string    `gorm:"type:varchar(50)"`
	Role                string    `gorm:"type:varchar(50);not null;default:'seeker';index"`
	Status              string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CulturalAffiliation string    `gorm:"type:varchar(100);index"`
	AvatarURL           *string   `gorm:"type:text"`
	TermsAgreed         bool      `gorm:"default:false"`
	EthicsAgreed        bool      `gorm:"default:false"`
	NewsletterAgreed    bool      `gorm:"default:false"`
	IsVerified          bool      `gorm:"default:false"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
