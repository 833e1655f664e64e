// Package pricing turns a fare model, a route and a moment in time into a
// confidence-scored price range for one (service, vehicle) pair.
package pricing

import "github.com/Thelma101/RideChecka-sub001/internal/modules/surge"

// Source records what an estimate's price is based on.
type Source string

const (
	// SourceModel: pure rate-card computation.
	SourceModel Source = "model"
	// SourceAPI: rate card with remote overrides applied.
	SourceAPI Source = "api"
	// SourceCrowdsourced: blended with >=3 nearby fare reports.
	SourceCrowdsourced Source = "crowdsourced"
	// SourceHybrid: blended with 1-2 nearby fare reports.
	SourceHybrid Source = "hybrid"
)

// Estimate is the computed output for one (service, vehicle) pair. Prices
// are naira; the calculator always emits multiples of 50, the calibration
// blend may land between rounding steps.
type Estimate struct {
	ServiceID     string      `json:"serviceId"` // composite "{service}-{vehicleSlug}"
	Service       string      `json:"service"`
	VehicleType   string      `json:"vehicleType"`
	Price         int64       `json:"price"`
	PriceLow      int64       `json:"priceLow"`
	PriceHigh     int64       `json:"priceHigh"`
	EstimatedTime string      `json:"estimatedTime"`
	TravelMinutes int         `json:"travelMinutes"`
	Surge         *surge.Info `json:"surge,omitempty"`
	Discount      int64       `json:"discount,omitempty"`
	Confidence    int         `json:"confidence"`
	Source        Source      `json:"source"`
	ReportCount   int         `json:"reportCount"`
}
