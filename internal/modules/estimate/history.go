package estimate

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HistorySink receives completed searches. Writes are fire-and-forget; the
// orchestrator never waits on or surfaces sink failures.
type HistorySink interface {
	Record(ctx context.Context, rec SearchRecord) error
}

// PGHistorySink appends searches to the search_history table.
type PGHistorySink struct {
	db *pgxpool.Pool
}

func NewPGHistorySink(db *pgxpool.Pool) *PGHistorySink {
	return &PGHistorySink{db: db}
}

func (s *PGHistorySink) Record(ctx context.Context, rec SearchRecord) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO search_history (
			pickup_address, pickup_lat, pickup_lng,
			dest_address, dest_lat, dest_lng,
			distance_km, cheapest_service_id, cheapest_price, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`,
		rec.PickupAddress, rec.PickupLat, rec.PickupLng,
		rec.DestAddress, rec.DestLat, rec.DestLng,
		rec.DistanceKm, rec.CheapestServiceID, rec.CheapestPrice,
	)
	if err != nil {
		return fmt.Errorf("insert search history: %w", err)
	}
	return nil
}
