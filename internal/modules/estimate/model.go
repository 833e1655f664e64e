// Package estimate orchestrates the full fan-out: route metrics, per-service
// pricing, remote overrides, crowdsource calibration, and result ordering.
package estimate

import "github.com/Thelma101/RideChecka-sub001/internal/modules/pricing"

// RouteInfo is derived once per request and shared by every estimate so all
// services price the same road distance.
type RouteInfo struct {
	DistanceKm    float64 `json:"distanceKm"`
	EstimatedTime string  `json:"estimatedTime"`
	TravelMinutes int     `json:"travelMinutes"`
}

// Result is the engine's sole public output: every (service, vehicle) pair
// in the catalog, sorted ascending by price.
type Result struct {
	Estimates []pricing.Estimate `json:"estimates"`
	Route     RouteInfo          `json:"routeInfo"`
}

// Override is one row from the remote override source. Nil fields leave the
// catalog value untouched (shallow merge, never a full replacement).
type Override struct {
	ServiceID  string   `json:"serviceId"`
	BaseFare   *float64 `json:"baseFare,omitempty"`
	PerKm      *float64 `json:"perKm,omitempty"`
	PerMin     *float64 `json:"perMin,omitempty"`
	MinFare    *float64 `json:"minFare,omitempty"`
	BookingFee *float64 `json:"bookingFee,omitempty"`
}

// SearchRecord is what the fire-and-forget history sink receives.
type SearchRecord struct {
	PickupAddress     string
	PickupLat         float64
	PickupLng         float64
	DestAddress       string
	DestLat           float64
	DestLng           float64
	DistanceKm        float64
	CheapestServiceID string
	CheapestPrice     int64
}
