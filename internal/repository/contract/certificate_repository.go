package contract

import (
	"context"

	"imbewu-be/internal/entity"
	"imbewu-be/internal/repository/specification"
)

// CertificateRepository is append-only: certificates are never updated or
// deleted once issued.
type CertificateRepository interface {
	Create(ctx context.Context, cert *entity.Certificate) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Certificate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Certificate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
