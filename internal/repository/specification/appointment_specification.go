package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySeekerID struct {
	SeekerID uuid.UUID
}

func (s BySeekerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("seeker_id = ?", s.SeekerID)
}

type ByContributorID struct {
	ContributorID uuid.UUID
}

func (s ByContributorID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contributor_id = ?", s.ContributorID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByStatuses filters by any of the given statuses
type ByStatuses struct {
	Statuses []string
}

func (s ByStatuses) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

// Upcoming keeps appointments starting at or after the reference time;
// invert for past appointments.
type Upcoming struct {
	Now  time.Time
	Past bool
}

func (s Upcoming) Apply(db *gorm.DB) *gorm.DB {
	if s.Past {
		return db.Where("start_time < ?", s.Now)
	}
	return db.Where("start_time >= ?", s.Now)
}

// Overlapping matches appointments whose [start,end) window intersects the
// given range. Used for availability conflict checks.
type Overlapping struct {
	Start time.Time
	End   time.Time
}

func (s Overlapping) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time < ? AND end_time > ?", s.End, s.Start)
}
