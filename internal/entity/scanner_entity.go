// FILE: internal/entity/scanner_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Facing identifies which physical camera the capture engine targets.
type Facing string

const (
	FacingBack  Facing = "environment"
	FacingFront Facing = "user"
)

// Toggle flips between the back and front camera.
func (f Facing) Toggle() Facing {
	if f == FacingBack {
		return FacingFront
	}
	return FacingBack
}

type ScanMode string

const (
	ScanModeScan       ScanMode = "scan"
	ScanModeManual     ScanMode = "manual"
	ScanModeSearch     ScanMode = "search"
	ScanModeNewProduct ScanMode = "new_product"
)

func ValidScanMode(m ScanMode) bool {
	switch m {
	case ScanModeScan, ScanModeManual, ScanModeSearch, ScanModeNewProduct:
		return true
	}
	return false
}

// ScannerSession is the transient per-user capture session. Exactly one
// engine stream may be live at a time: any facing switch or mode exit must
// fully stop the current stream before starting another.
type ScannerSession struct {
	Id     uuid.UUID
	UserId uuid.UUID
	Mode   ScanMode
	Facing Facing
	// Started means the engine was initialized at least once; Running
	// means it is actively streaming. Started-but-not-running sessions
	// are lazily re-attached when the user returns to scan mode.
	Started bool
	Running bool
	// Generation increases on every accepted detection; detections
	// reported for an older generation are stale and discarded.
	Generation uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
