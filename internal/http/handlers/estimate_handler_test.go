package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	routes "github.com/Thelma101/RideChecka-sub001/internal/http"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/catalog"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/estimate"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/pricing"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/reports"
	"github.com/Thelma101/RideChecka-sub001/internal/types"
)

// stubReports is a test double for the calibration side of the engine.
type stubReports struct {
	avg   float64
	count int
	subs  []reports.Report
}

func (s *stubReports) Submit(_ context.Context, r reports.Report) error {
	s.subs = append(s.subs, r)
	return nil
}

func (s *stubReports) AverageActualFare(context.Context, string, types.Point, types.Point) (float64, int, error) {
	return s.avg, s.count, nil
}

func newTestRouter(t *testing.T, stub *stubReports) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := estimate.NewService(estimate.Deps{
		Catalog: cat,
		Calc: pricing.NewCalculatorWith(
			func() time.Time { return time.Date(2026, 8, 26, 14, 5, 0, 0, time.UTC) },
			func() float64 { return 0.5 },
		),
		Reports: stub,
		Log:     log,
	})
	return routes.NewRouter(svc, cat, log)
}

const estimateBody = `{
	"pickup": {"address": "Allen Avenue, Ikeja, Lagos", "lat": 6.6018, "lng": 3.3515},
	"destination": {"address": "Admiralty Way, Lekki, Lagos", "lat": 6.4478, "lng": 3.4723}
}`

func TestEstimates_OK(t *testing.T) {
	r := newTestRouter(t, &stubReports{})

	req := httptest.NewRequest(http.MethodPost, "/api/estimates", strings.NewReader(estimateBody))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var res estimate.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Estimates) == 0 {
		t.Fatal("no estimates returned")
	}
	if res.Route.DistanceKm <= 0 || res.Route.EstimatedTime == "" {
		t.Errorf("route info missing: %+v", res.Route)
	}
	for i := 1; i < len(res.Estimates); i++ {
		if res.Estimates[i].Price < res.Estimates[i-1].Price {
			t.Fatal("estimates not sorted ascending by price")
		}
	}
}

func TestEstimates_InvalidJSON(t *testing.T) {
	r := newTestRouter(t, &stubReports{})
	req := httptest.NewRequest(http.MethodPost, "/api/estimates", strings.NewReader("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestEstimates_MissingCoordinates(t *testing.T) {
	r := newTestRouter(t, &stubReports{})
	req := httptest.NewRequest(http.MethodPost, "/api/estimates",
		strings.NewReader(`{"pickup": {"address": "nowhere"}, "destination": {"address": "elsewhere"}}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestReports_Created(t *testing.T) {
	stub := &stubReports{}
	r := newTestRouter(t, stub)

	body := `{
		"serviceId": "uber-uberx",
		"pickup": {"lat": 6.6018, "lng": 3.3515},
		"destination": {"lat": 6.4478, "lng": 3.4723},
		"actualFare": 4200,
		"estimatedFare": 4000,
		"note": "toll included"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(stub.subs) != 1 || stub.subs[0].ServiceID != "uber" {
		t.Errorf("submitted reports: %+v", stub.subs)
	}
}

func TestReports_UnknownService(t *testing.T) {
	r := newTestRouter(t, &stubReports{})
	body := `{
		"serviceId": "ghost",
		"pickup": {"lat": 6.6, "lng": 3.35},
		"destination": {"lat": 6.45, "lng": 3.47},
		"actualFare": 4200
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestServices_List(t *testing.T) {
	r := newTestRouter(t, &stubReports{})
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var res struct {
		Services []struct {
			ServiceID string `json:"serviceId"`
		} `json:"services"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Services) != 16 {
		t.Errorf("got %d services, want 16", len(res.Services))
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &stubReports{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
