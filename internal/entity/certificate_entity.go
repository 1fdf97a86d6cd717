// FILE: internal/entity/certificate_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

const CertificateIssuer = "Imbewu Food Safety System"

// Certificate is an append-only issuance record. Repeated issuance for the
// same product is permitted and produces independent certificates.
type Certificate struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	CertificateId string
	ProductName   string
	Brand         string
	Barcode       string
	IssuedBy      string
	IssuedAt      time.Time
}
