package model

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SeekerId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ContributorId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(255);not null"`
	StartTime     time.Time `gorm:"not null;index"`
	EndTime       time.Time `gorm:"not null"`
	Type          string    `gorm:"type:varchar(50);not null;default:'video'"`
	Notes         string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(50);not null;default:'scheduled';index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Appointment) TableName() string {
	return "appointments"
}
