// Package reports collects crowdsourced actual-fare samples and answers
// route-local queries over them for calibration.
package reports

import (
	"time"

	"github.com/Thelma101/RideChecka-sub001/internal/types"
)

// Report is one user-submitted fare sample. ServiceID is the base service
// (not the composite vehicle-specific id). ID is minted on submit and
// travels with the remote mirror so merged populations de-duplicate
// exactly. Reports are immutable once created.
type Report struct {
	ID            string
	ServiceID     string
	Pickup        types.Point
	Destination   types.Point
	ActualFare    float64
	EstimatedFare float64
	Note          string
	CreatedAt     time.Time
}
