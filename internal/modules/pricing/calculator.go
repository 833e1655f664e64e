package pricing

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/catalog"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/surge"
)

// roundingStep is the naira granularity every model price snaps to.
const roundingStep = 50

// Calculator computes baseline estimates. The clock and RNG are injected so
// surge buckets, the discount gate and bid-based variance are reproducible
// in tests; the zero-config constructor uses the live ones.
type Calculator struct {
	now func() time.Time
	rng func() float64
}

func NewCalculator() *Calculator {
	return &Calculator{now: time.Now, rng: rand.Float64}
}

// NewCalculatorWith builds a Calculator with a fixed clock and RNG.
func NewCalculatorWith(now func() time.Time, rng func() float64) *Calculator {
	return &Calculator{now: now, rng: rng}
}

// Compute runs the fare pipeline for one (model, vehicle) pair. Step order
// matters: the minimum-fare floor and the 50-naira rounding apply after the
// multipliers, and the price band derives from the already-rounded price.
func (c *Calculator) Compute(m catalog.FareModel, vehicle catalog.VehicleCategory, distanceKm float64, travelMinutes int, cityMultiplier float64) Estimate {
	now := c.now()

	price := m.BaseFare + m.PerKm*distanceKm + m.PerMin*float64(travelMinutes) + m.BookingFee
	price *= vehicle.Multiplier
	price *= cityMultiplier

	if m.IsBidBased {
		// Negotiation variance, the one intentionally non-deterministic step.
		price *= 0.85 + c.rng()*0.25
	}

	si := surge.Compute(m.ServiceID, now)
	if si.Surged() {
		price *= si.Multiplier
	}

	if price < m.MinFare {
		price = m.MinFare
	}
	rounded := roundToStep(price)
	if float64(rounded) < m.MinFare {
		// An off-step minimum fare must round up, never below the floor.
		rounded += roundingStep
	}

	low := roundToStep(float64(rounded) * (1 - m.MarginOfError))
	if low < int64(m.MinFare) {
		low = int64(m.MinFare)
	}
	high := roundToStep(float64(rounded) * (1 + m.MarginOfError))
	if high < rounded {
		high = rounded
	}

	est := Estimate{
		ServiceID:     m.ServiceID + "-" + VehicleSlug(vehicle.Type),
		Service:       m.Name,
		VehicleType:   vehicle.Type,
		Price:         rounded,
		PriceLow:      low,
		PriceHigh:     high,
		TravelMinutes: travelMinutes,
		EstimatedTime: FormatDuration(travelMinutes),
		Confidence:    confidenceFor(m, distanceKm, si.Surged()),
		Source:        SourceModel,
	}
	if si.Surged() {
		s := si
		est.Surge = &s
	}
	est.Discount = discountFor(m, rounded, now)
	return est
}

// confidenceFor applies distance and surge penalties to the model's base
// confidence. Each penalty has its own floor.
func confidenceFor(m catalog.FareModel, distanceKm float64, surged bool) int {
	c := m.BaseConfidence
	switch {
	case distanceKm > 30:
		c -= 15
		if c < 20 {
			c = 20
		}
	case distanceKm > 15:
		c -= 8
		if c < 25 {
			c = 25
		}
	}
	if surged {
		c -= 10
		if c < 15 {
			c = 15
		}
	}
	return c
}

// discountFor is a minute-of-day promotion gate. The wall-clock coupling is
// a known placeholder for real promotion logic; it stays isolated here
// behind the injected clock.
func discountFor(m catalog.FareModel, price int64, now time.Time) int64 {
	minute := now.Minute()
	if (len(m.Name)+minute)%10 != 0 {
		return 0
	}
	pct := 0.10 + float64(minute%5)/50
	return int64(math.Round(float64(price) * pct))
}

// VehicleSlug lowercases a vehicle type for use in composite service ids.
func VehicleSlug(vehicleType string) string {
	return strings.ReplaceAll(strings.ToLower(vehicleType), " ", "-")
}

func roundToStep(v float64) int64 {
	return int64(math.Round(v/roundingStep)) * roundingStep
}
