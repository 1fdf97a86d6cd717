package dto

import (
	"time"

	"github.com/google/uuid"
)

type IssueCertificateRequest struct {
	Barcode     string `json:"barcode" validate:"required,numeric"`
	ProductName string `json:"product_name" validate:"required,min=2"`
	Brand       string `json:"brand" validate:"omitempty,max=128"`
}

type CertificateResponse struct {
	Id            uuid.UUID `json:"id"`
	CertificateId string    `json:"certificate_id"`
	ProductName   string    `json:"product_name"`
	Brand         string    `json:"brand,omitempty"`
	Barcode       string    `json:"barcode"`
	IssuedBy      string    `json:"issued_by"`
	IssuedAt      time.Time `json:"issued_at"`
}
