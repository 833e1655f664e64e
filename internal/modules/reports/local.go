package reports

import (
	"context"
	"sync"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/location"
)

// localCap bounds the in-memory report buffer; the oldest report is evicted
// first once the cap is reached.
const localCap = 200

// LocalStore keeps this process's recent reports in memory so calibration
// works even with no remote mirror configured.
type LocalStore struct {
	mu      sync.Mutex
	reports []Report
}

func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

func (s *LocalStore) Submit(_ context.Context, r Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.reports) >= localCap {
		s.reports = s.reports[1:]
	}
	s.reports = append(s.reports, r)
	return nil
}

// QueryNear returns reports for serviceID whose pickup and destination both
// fall inside the given bounding boxes.
func (s *LocalStore) QueryNear(_ context.Context, serviceID string, pickupBox, destBox location.Box) ([]Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Report
	for _, r := range s.reports {
		if r.ServiceID != serviceID {
			continue
		}
		if pickupBox.Contains(r.Pickup) && destBox.Contains(r.Destination) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Len reports the current buffer size.
func (s *LocalStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}
