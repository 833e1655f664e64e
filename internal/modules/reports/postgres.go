package reports

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/location"
)

// PGStore mirrors fare reports to Postgres so calibration data survives
// restarts and is shared across instances.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Submit(ctx context.Context, r Report) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO fare_reports (
			id, service_id, pickup_lat, pickup_lng, dest_lat, dest_lng,
			actual_fare, estimated_fare, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.ID, r.ServiceID,
		r.Pickup.Lat, r.Pickup.Lng,
		r.Destination.Lat, r.Destination.Lng,
		r.ActualFare, r.EstimatedFare,
		r.Note, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fare report: %w", err)
	}
	return nil
}

// QueryNear pre-filters by bounding box in SQL; the caller applies the
// exact radius check. Capped at the most recent 200 rows to keep the
// blend from scanning unbounded history.
func (s *PGStore) QueryNear(ctx context.Context, serviceID string, pickupBox, destBox location.Box) ([]Report, error) {
	rows, err := s.db.Query(ctx, `
		SELECT COALESCE(id, ''), service_id,
		       pickup_lat, pickup_lng, dest_lat, dest_lng,
		       actual_fare, estimated_fare, COALESCE(note, ''), created_at
		FROM fare_reports
		WHERE service_id = $1
		  AND pickup_lat BETWEEN $2 AND $3
		  AND pickup_lng BETWEEN $4 AND $5
		  AND dest_lat   BETWEEN $6 AND $7
		  AND dest_lng   BETWEEN $8 AND $9
		ORDER BY created_at DESC
		LIMIT 200`,
		serviceID,
		pickupBox.MinLat, pickupBox.MaxLat,
		pickupBox.MinLng, pickupBox.MaxLng,
		destBox.MinLat, destBox.MaxLat,
		destBox.MinLng, destBox.MaxLng,
	)
	if err != nil {
		return nil, fmt.Errorf("query fare reports: %w", err)
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var r Report
		if err := rows.Scan(
			&r.ID, &r.ServiceID,
			&r.Pickup.Lat, &r.Pickup.Lng,
			&r.Destination.Lat, &r.Destination.Lng,
			&r.ActualFare, &r.EstimatedFare,
			&r.Note, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fare report: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
