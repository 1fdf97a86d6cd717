package contract

import (
	"context"

	"imbewu-be/internal/entity"

	"github.com/google/uuid"
)

// RecentVerificationRepository is the small key-value surface over the
// per-user recent-verifications list. The persisted list is canonical:
// every mutation rewrites the full list.
type RecentVerificationRepository interface {
	Load(ctx context.Context, userId uuid.UUID) ([]entity.RecentVerificationEntry, error)
	Save(ctx context.Context, userId uuid.UUID, list []entity.RecentVerificationEntry) error
}
