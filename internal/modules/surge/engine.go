// Package surge computes the deterministic time-of-day demand multiplier.
//
// Compute is a pure function of (serviceID, now): no clocks, no RNG, no
// hidden state. Two services in the same time bucket still differ slightly
// because both the bucket base and the jitter derive from a stable hash of
// the service id.
package surge

import (
	"math"
	"time"
)

// Info is the ephemeral surge result for one service at one instant.
type Info struct {
	Multiplier float64
	Reason     string
}

// Surged reports whether the multiplier is above the neutral 1.0.
func (i Info) Surged() bool {
	return i.Multiplier > 1.0
}

const (
	minMultiplier = 1.0
	maxMultiplier = 2.5
)

type bucket struct {
	lo, hi float64
	reason string
}

var (
	morningRush = bucket{1.20, 1.56, "Morning rush hour"}
	eveningRush = bucket{1.30, 1.75, "Evening rush hour"}
	lateNight   = bucket{1.20, 1.53, "Late-night surcharge"}
	weekendPeak = bucket{1.15, 1.45, "Weekend evening demand"}
)

// Compute classifies now (local time) into a demand bucket and derives the
// per-service multiplier. Outside every bucket it returns exactly 1.0 with
// an empty reason.
func Compute(serviceID string, now time.Time) Info {
	h := hash(serviceID)
	b, ok := bucketFor(now)
	if !ok {
		return Info{Multiplier: 1.0}
	}

	span := int(math.Round((b.hi - b.lo) * 100))
	base := b.lo + float64(h%(span+1))/100

	jitter := 0.90 + float64(h%20)/100 // [0.90, 1.09]

	m := math.Round(base*jitter*100) / 100
	if m < minMultiplier {
		m = minMultiplier
	}
	if m > maxMultiplier {
		m = maxMultiplier
	}
	return Info{Multiplier: m, Reason: b.reason}
}

func bucketFor(now time.Time) (bucket, bool) {
	hour := now.Hour()
	weekday := now.Weekday()
	weekend := weekday == time.Saturday || weekday == time.Sunday

	// Late night takes precedence over the weekend bucket at 23:00.
	if hour >= 23 || hour < 5 {
		return lateNight, true
	}
	if !weekend && hour >= 7 && hour < 9 {
		return morningRush, true
	}
	if !weekend && hour >= 17 && hour < 20 {
		return eveningRush, true
	}
	if weekend && hour >= 18 && hour < 23 {
		return weekendPeak, true
	}
	return bucket{}, false
}

// hash is the sum of the service id's byte values. Stable across runs, so
// surge output is reproducible in tests.
func hash(serviceID string) int {
	sum := 0
	for i := 0; i < len(serviceID); i++ {
		sum += int(serviceID[i])
	}
	return sum
}
