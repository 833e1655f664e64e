package estimate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// OverrideSource supplies remote per-service fare corrections. At most 50
// rows are honoured per fetch.
type OverrideSource interface {
	Fetch(ctx context.Context) ([]Override, error)
}

const overrideRowLimit = 50

// PGOverrideSource reads overrides from the fare_overrides table.
type PGOverrideSource struct {
	db *pgxpool.Pool
}

func NewPGOverrideSource(db *pgxpool.Pool) *PGOverrideSource {
	return &PGOverrideSource{db: db}
}

func (s *PGOverrideSource) Fetch(ctx context.Context) ([]Override, error) {
	rows, err := s.db.Query(ctx, `
		SELECT service_id, base_fare, per_km, per_min, min_fare, booking_fee
		FROM fare_overrides
		ORDER BY updated_at DESC
		LIMIT $1`, overrideRowLimit)
	if err != nil {
		return nil, fmt.Errorf("query fare overrides: %w", err)
	}
	defer rows.Close()

	var out []Override
	for rows.Next() {
		var o Override
		if err := rows.Scan(&o.ServiceID, &o.BaseFare, &o.PerKm, &o.PerMin, &o.MinFare, &o.BookingFee); err != nil {
			return nil, fmt.Errorf("scan fare override: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

const (
	overrideCacheKey = "ridechecka:overrides"
	overrideCacheTTL = 5 * time.Minute
)

// CachedOverrideSource is a redis read-through in front of another source,
// so every estimate request does not pay a Postgres round trip.
type CachedOverrideSource struct {
	next  OverrideSource
	redis *redis.Client
}

func NewCachedOverrideSource(next OverrideSource, rdb *redis.Client) *CachedOverrideSource {
	return &CachedOverrideSource{next: next, redis: rdb}
}

func (s *CachedOverrideSource) Fetch(ctx context.Context) ([]Override, error) {
	if raw, err := s.redis.Get(ctx, overrideCacheKey).Bytes(); err == nil {
		var cached []Override
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// Corrupt cache entry: fall through to the source and rewrite it.
	}

	fresh, err := s.next.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(fresh); err == nil {
		// Cache write is best-effort; a miss next time just refetches.
		_ = s.redis.Set(ctx, overrideCacheKey, raw, overrideCacheTTL).Err()
	}
	return fresh, nil
}
