// Package catalog holds the static per-service fare parameters the engine
// prices against. Entries approximate each operator's public rate card;
// keeping them accurate is a data-entry concern, not an algorithmic one.
package catalog

// ServiceType groups operators by vehicle class for ETA purposes.
type ServiceType string

const (
	ServiceCar  ServiceType = "car"
	ServiceBike ServiceType = "bike"
	ServiceBus  ServiceType = "bus"
)

// VehicleCategory scales a model's base price for a tier within one service
// (e.g. Bolt vs Bolt Premium).
type VehicleCategory struct {
	Type       string
	Multiplier float64
}

// FareModel is one service's static pricing record. All monetary fields are
// in naira. Models are built once at startup and never mutated; overrides
// are applied to copies (see the estimate module).
type FareModel struct {
	ServiceID      string
	Name           string
	BaseFare       float64
	PerKm          float64
	PerMin         float64
	MinFare        float64
	BookingFee     float64
	VehicleTypes   []VehicleCategory
	MarginOfError  float64 // fractional, (0,1]
	BaseConfidence int     // 0..100
	ServiceType    ServiceType
	IsBidBased     bool // negotiation-style pricing, adds variance
}
