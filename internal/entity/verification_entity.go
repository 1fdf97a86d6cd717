// FILE: internal/entity/verification_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecentLimit caps the per-user recent-verifications list.
const RecentLimit = 5

// RecentVerificationEntry is the shortcut-card projection of a viewed
// product.
type RecentVerificationEntry struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Image    string `json:"image,omitempty"`
	Verified bool   `json:"verified"`
}

// PushRecent inserts entry at the front of list, removing any previous
// entry with the same barcode and truncating to RecentLimit. The returned
// slice is the canonical new list and must be persisted by the caller.
func PushRecent(list []RecentVerificationEntry, entry RecentVerificationEntry) []RecentVerificationEntry {
	out := make([]RecentVerificationEntry, 0, len(list)+1)
	out = append(out, entry)
	for _, e := range list {
		if e.Code == entry.Code {
			continue
		}
		out = append(out, e)
	}
	if len(out) > RecentLimit {
		out = out[:RecentLimit]
	}
	return out
}

type VerificationStatus string

const (
	VerificationStatusVerified        VerificationStatus = "verified"
	VerificationStatusUnverified      VerificationStatus = "unverified"
	VerificationStatusReviewRequested VerificationStatus = "review_requested"
)

// VerificationRecord is one row of a product's verification history,
// appended by the verification pipeline consumer on every completed
// lookup and on review requests.
type VerificationRecord struct {
	Id              uuid.UUID
	Barcode         string
	UserId          uuid.UUID
	Status          VerificationStatus
	VerifiedBy      string
	ComplianceScore int
	Payload         map[string]any
	CreatedAt       time.Time
}
