package pricing

import (
	"fmt"
	"math"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/catalog"
)

// Average road speeds. Longer trips spend more time on expressways.
const (
	shortTripSpeedKmh = 25.0
	longTripSpeedKmh  = 35.0
	longTripKm        = 15.0
	minTravelMinutes  = 3
)

// TravelMinutes estimates door-to-door minutes for a distance and vehicle
// class. Bikes filter through traffic, buses stop along the way.
func TravelMinutes(distanceKm float64, serviceType catalog.ServiceType) int {
	speed := shortTripSpeedKmh
	if distanceKm > longTripKm {
		speed = longTripSpeedKmh
	}
	minutes := distanceKm / speed * 60

	switch serviceType {
	case catalog.ServiceBike:
		minutes *= 0.70
	case catalog.ServiceBus:
		minutes *= 1.30
	}

	m := int(math.Round(minutes))
	if m < minTravelMinutes {
		m = minTravelMinutes
	}
	return m
}

// FormatDuration renders minutes as "24 min" or "1 hr 5 min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%d hr", h)
	}
	return fmt.Sprintf("%d hr %d min", h, m)
}
