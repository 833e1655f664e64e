// Package location contains pure geographic computation helpers.
package location

import (
	"math"

	"github.com/Thelma101/RideChecka-sub001/internal/types"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func HaversineKm(a, b types.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Box is an axis-aligned bounding box in decimal degrees.
type Box struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// BoundingBox returns a box that fully contains the circle of radiusKm
// around center. It is a cheap pre-filter; callers still need an exact
// haversine check on whatever the box admits.
func BoundingBox(center types.Point, radiusKm float64) Box {
	latDelta := radiusKm / 110.574
	lngDelta := radiusKm / (111.320 * math.Cos(degreesToRadians(center.Lat)))
	if lngDelta < 0 {
		lngDelta = -lngDelta
	}
	return Box{
		MinLat: center.Lat - latDelta,
		MaxLat: center.Lat + latDelta,
		MinLng: center.Lng - lngDelta,
		MaxLng: center.Lng + lngDelta,
	}
}

// Contains reports whether p falls inside the box.
func (b Box) Contains(p types.Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}
