package reports

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/location"
	"github.com/Thelma101/RideChecka-sub001/internal/types"
)

// DefaultRadiusKm bounds how far a report's endpoints may sit from the
// queried route's endpoints and still count as "the same route".
const DefaultRadiusKm = 2.0

// Store is the read/write contract both report stores satisfy.
type Store interface {
	Submit(ctx context.Context, r Report) error
	QueryNear(ctx context.Context, serviceID string, pickupBox, destBox location.Box) ([]Report, error)
}

// Service merges the local buffer with an optional remote mirror and
// answers the two calibration queries. A nil remote store means a
// local-only deployment.
type Service struct {
	local    *LocalStore
	remote   Store
	radiusKm float64
	log      *logrus.Logger
}

func NewService(local *LocalStore, remote Store, log *logrus.Logger) *Service {
	return &Service{local: local, remote: remote, radiusKm: DefaultRadiusKm, log: log}
}

// Submit records a report locally and best-effort mirrors it remotely. A
// failed mirror write is logged and dropped; the local copy still counts.
func (s *Service) Submit(ctx context.Context, r Report) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := s.local.Submit(ctx, r); err != nil {
		return fmt.Errorf("local report store: %w", err)
	}
	if s.remote != nil {
		if err := s.remote.Submit(ctx, r); err != nil {
			s.log.WithError(err).WithField("service", r.ServiceID).
				Warn("fare report mirror write failed")
		}
	}
	return nil
}

// ReportCount counts reports for serviceID within radius of both route
// endpoints.
func (s *Service) ReportCount(ctx context.Context, serviceID string, pickup, dest types.Point) (int, error) {
	matches, err := s.near(ctx, serviceID, pickup, dest)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

// AverageActualFare returns the arithmetic mean of actual fares near the
// route plus the sample count. count == 0 means no calibration data.
func (s *Service) AverageActualFare(ctx context.Context, serviceID string, pickup, dest types.Point) (avg float64, count int, err error) {
	matches, err := s.near(ctx, serviceID, pickup, dest)
	if err != nil {
		return 0, 0, err
	}
	if len(matches) == 0 {
		return 0, 0, nil
	}
	var sum float64
	for _, r := range matches {
		sum += r.ActualFare
	}
	return sum / float64(len(matches)), len(matches), nil
}

// near merges local and remote populations (bounding-box pre-filter, exact
// haversine check on both endpoints) and de-duplicates mirrored copies of
// this process's own submissions by report id. Rows without an id fall
// back to a (service, timestamp, fare) tuple key.
func (s *Service) near(ctx context.Context, serviceID string, pickup, dest types.Point) ([]Report, error) {
	pickupBox := location.BoundingBox(pickup, s.radiusKm)
	destBox := location.BoundingBox(dest, s.radiusKm)

	candidates, err := s.local.QueryNear(ctx, serviceID, pickupBox, destBox)
	if err != nil {
		return nil, err
	}
	if s.remote != nil {
		remote, err := s.remote.QueryNear(ctx, serviceID, pickupBox, destBox)
		if err != nil {
			return nil, fmt.Errorf("remote report store: %w", err)
		}
		candidates = append(candidates, remote...)
	}

	seen := make(map[string]bool, len(candidates))
	var out []Report
	for _, r := range candidates {
		if location.HaversineKm(pickup, r.Pickup) > s.radiusKm {
			continue
		}
		if location.HaversineKm(dest, r.Destination) > s.radiusKm {
			continue
		}
		key := r.ID
		if key == "" {
			key = fmt.Sprintf("%s|%d|%.0f", r.ServiceID, r.CreatedAt.Unix(), r.ActualFare)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out, nil
}
