package model

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	CertificateId string    `gorm:"type:varchar(50);not null;index"`
	ProductName   string    `gorm:"type:varchar(255);not null"`
	Brand         string    `gorm:"type:varchar(255)"`
	Barcode       string    `gorm:"type:varchar(100);not null;index"`
	IssuedBy      string    `gorm:"type:varchar(255);not null"`
	IssuedAt      time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Certificate) TableName() string {
	return "certificates"
}
