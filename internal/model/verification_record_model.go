package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type VerificationRecord struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Barcode         string         `gorm:"type:varchar(100);not null;index"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status          string         `gorm:"type:varchar(50);not null"`
	VerifiedBy      string         `gorm:"type:varchar(255)"`
	ComplianceScore int            `gorm:"default:0"`
	Payload         datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index"`
}

func (VerificationRecord) TableName() string {
	return "verification_records"
}
