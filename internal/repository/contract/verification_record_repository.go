package contract

import (
	"context"

	"imbewu-be/internal/entity"
	"imbewu-be/internal/repository/specification"
)

type VerificationRecordRepository interface {
	Create(ctx context.Context, record *entity.VerificationRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VerificationRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
