package estimate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/catalog"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/location"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/pricing"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/reports"
	"github.com/Thelma101/RideChecka-sub001/internal/types"
)

// roadFactor inflates straight-line distance to approximate the road
// network when no maps provider is configured.
const roadFactor = 1.35

var ErrBadRequest = errors.New("pickup and destination coordinates are required")

// ReportService is the slice of the reports module the orchestrator needs.
type ReportService interface {
	Submit(ctx context.Context, r reports.Report) error
	AverageActualFare(ctx context.Context, serviceID string, pickup, dest types.Point) (float64, int, error)
}

// DistanceProvider resolves a road distance in km between two addresses.
// Optional; any failure falls back to the haversine approximation.
type DistanceProvider interface {
	DistanceKm(ctx context.Context, origin, destination string) (float64, error)
}

// Service is the estimation orchestrator and the engine's public surface.
// Every collaborator other than the catalog and calculator may be nil;
// absence means local-only degradation, never an error.
type Service struct {
	catalog   *catalog.Catalog
	calc      *pricing.Calculator
	reports   ReportService
	overrides OverrideSource
	history   HistorySink
	distance  DistanceProvider
	log       *logrus.Logger
}

type Deps struct {
	Catalog   *catalog.Catalog
	Calc      *pricing.Calculator
	Reports   ReportService
	Overrides OverrideSource
	History   HistorySink
	Distance  DistanceProvider
	Log       *logrus.Logger
}

func NewService(deps Deps) *Service {
	return &Service{
		catalog:   deps.Catalog,
		calc:      deps.Calc,
		reports:   deps.Reports,
		overrides: deps.Overrides,
		history:   deps.History,
		distance:  deps.Distance,
		log:       deps.Log,
	}
}

// Estimate prices the full catalog for one pickup/destination pair. The
// contract is "always a full, internally consistent estimate set":
// collaborator failures degrade accuracy silently, never availability.
func (s *Service) Estimate(ctx context.Context, pickup, dest types.Location) (Result, error) {
	if (pickup.Point == types.Point{}) || (dest.Point == types.Point{}) {
		return Result{}, ErrBadRequest
	}

	distanceKm := s.roadDistanceKm(ctx, pickup, dest)
	routeMinutes := pricing.TravelMinutes(distanceKm, catalog.ServiceCar)
	route := RouteInfo{
		DistanceKm:    distanceKm,
		TravelMinutes: routeMinutes,
		EstimatedTime: pricing.FormatDuration(routeMinutes),
	}

	// Pickup decides the city; an untabulated pickup town defers to the
	// destination before settling on the default multiplier.
	cityMultiplier, tabulated := pricing.LookupCityMultiplier(pickup.Address)
	if !tabulated {
		if m, ok := pricing.LookupCityMultiplier(dest.Address); ok {
			cityMultiplier = m
		}
	}

	overrides := s.fetchOverrides(ctx)

	var estimates []pricing.Estimate
	var baseIDs []string // parallel to estimates: base service id for calibration
	for _, model := range s.catalog.All() {
		m, overridden := applyOverride(model, overrides)
		minutes := pricing.TravelMinutes(distanceKm, m.ServiceType)
		for _, vehicle := range m.VehicleTypes {
			est := s.calc.Compute(m, vehicle, distanceKm, minutes, cityMultiplier)
			if overridden {
				est.Source = pricing.SourceAPI
			}
			estimates = append(estimates, est)
			baseIDs = append(baseIDs, m.ServiceID)
		}
	}

	s.calibrateAll(ctx, estimates, baseIDs, pickup.Point, dest.Point)

	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].Price < estimates[j].Price
	})

	s.recordSearch(pickup, dest, distanceKm, estimates)

	return Result{Estimates: estimates, Route: route}, nil
}

// SubmitFareReport is the engine's sole calibration input. serviceID may be
// a composite estimate id ("uber-uberx"); it is reduced to the base service
// and validated against the catalog.
func (s *Service) SubmitFareReport(ctx context.Context, serviceID string, pickup, dest types.Location, actualFare, estimatedFare float64, note string) error {
	base := baseServiceID(serviceID)
	if _, err := s.catalog.ByID(base); err != nil {
		return err
	}
	if actualFare <= 0 {
		return fmt.Errorf("%w: actual fare must be positive", ErrBadRequest)
	}
	return s.reports.Submit(ctx, reports.Report{
		ServiceID:     base,
		Pickup:        pickup.Point,
		Destination:   dest.Point,
		ActualFare:    actualFare,
		EstimatedFare: estimatedFare,
		Note:          note,
		CreatedAt:     time.Now().UTC(),
	})
}

// roadDistanceKm prefers the maps provider and falls back to inflated
// haversine on absence or failure.
func (s *Service) roadDistanceKm(ctx context.Context, pickup, dest types.Location) float64 {
	if s.distance != nil && pickup.Address != "" && dest.Address != "" {
		km, err := s.distance.DistanceKm(ctx, pickup.Address, dest.Address)
		if err == nil && km > 0 {
			return round2(km)
		}
		if err != nil {
			s.log.WithError(err).Debug("maps distance unavailable, using haversine")
		}
	}
	return round2(location.HaversineKm(pickup.Point, dest.Point) * roadFactor)
}

func (s *Service) fetchOverrides(ctx context.Context) map[string]Override {
	if s.overrides == nil {
		return nil
	}
	rows, err := s.overrides.Fetch(ctx)
	if err != nil {
		s.log.WithError(err).Warn("override fetch failed, using catalog rates")
		return nil
	}
	if len(rows) > overrideRowLimit {
		rows = rows[:overrideRowLimit]
	}
	out := make(map[string]Override, len(rows))
	for _, o := range rows {
		out[o.ServiceID] = o
	}
	return out
}

// calibrateAll enriches every estimate concurrently and joins before
// returning, so no partially enriched result set is ever visible. Each task
// touches only its own slice element; a failed lookup leaves model defaults.
func (s *Service) calibrateAll(ctx context.Context, estimates []pricing.Estimate, baseIDs []string, pickup, dest types.Point) {
	if s.reports == nil {
		return
	}
	var g errgroup.Group
	for i := range estimates {
		i := i
		g.Go(func() error {
			avg, count, err := s.reports.AverageActualFare(ctx, baseIDs[i], pickup, dest)
			if err != nil {
				s.log.WithError(err).WithField("service", baseIDs[i]).
					Debug("calibration lookup failed, keeping model estimate")
				return nil
			}
			applyCalibration(&estimates[i], avg, count)
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors; Wait is the completion barrier
}

// recordSearch fires the history write without blocking the response.
func (s *Service) recordSearch(pickup, dest types.Location, distanceKm float64, estimates []pricing.Estimate) {
	if s.history == nil || len(estimates) == 0 {
		return
	}
	cheapest := estimates[0]
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.history.Record(ctx, SearchRecord{
			PickupAddress:     pickup.Address,
			PickupLat:         pickup.Lat,
			PickupLng:         pickup.Lng,
			DestAddress:       dest.Address,
			DestLat:           dest.Lat,
			DestLng:           dest.Lng,
			DistanceKm:        distanceKm,
			CheapestServiceID: cheapest.ServiceID,
			CheapestPrice:     cheapest.Price,
		}); err != nil {
			s.log.WithError(err).Debug("search history write failed")
		}
	}()
}

// applyOverride shallow-merges an override row into a copy of the model.
func applyOverride(m catalog.FareModel, overrides map[string]Override) (catalog.FareModel, bool) {
	o, ok := overrides[m.ServiceID]
	if !ok {
		return m, false
	}
	if o.BaseFare != nil {
		m.BaseFare = *o.BaseFare
	}
	if o.PerKm != nil {
		m.PerKm = *o.PerKm
	}
	if o.PerMin != nil {
		m.PerMin = *o.PerMin
	}
	if o.MinFare != nil {
		m.MinFare = *o.MinFare
	}
	if o.BookingFee != nil {
		m.BookingFee = *o.BookingFee
	}
	return m, true
}

func baseServiceID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
