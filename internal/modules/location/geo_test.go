package location

import (
	"math"
	"testing"

	"github.com/Thelma101/RideChecka-sub001/internal/types"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: 6.5244, Lng: 3.3792},
			b:         types.Point{Lat: 6.5244, Lng: 3.3792},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "Ikeja to Lekki Phase 1 (~24km)",
			a:         types.Point{Lat: 6.6018, Lng: 3.3515},
			b:         types.Point{Lat: 6.4478, Lng: 3.4723},
			wantKm:    21.6,
			tolerance: 2.0,
		},
		{
			name:      "Lagos to Abuja (~536km)",
			a:         types.Point{Lat: 6.5244, Lng: 3.3792},
			b:         types.Point{Lat: 9.0765, Lng: 7.3986},
			wantKm:    536,
			tolerance: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("HaversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := types.Point{Lat: 6.5, Lng: 3.3}
	b := types.Point{Lat: 9.0, Lng: 7.4}
	d1 := HaversineKm(a, b)
	d2 := HaversineKm(b, a)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

func TestBoundingBox_ContainsCircle(t *testing.T) {
	center := types.Point{Lat: 6.5244, Lng: 3.3792}
	box := BoundingBox(center, 2.0)

	if !box.Contains(center) {
		t.Fatal("box must contain its own center")
	}

	// Points just inside the 2km radius in the four cardinal directions.
	for _, p := range []types.Point{
		{Lat: center.Lat + 0.017, Lng: center.Lng},
		{Lat: center.Lat - 0.017, Lng: center.Lng},
		{Lat: center.Lat, Lng: center.Lng + 0.017},
		{Lat: center.Lat, Lng: center.Lng - 0.017},
	} {
		if HaversineKm(center, p) > 2.0 {
			continue
		}
		if !box.Contains(p) {
			t.Errorf("box should contain %v (%.3fkm from center)", p, HaversineKm(center, p))
		}
	}
}

func TestBoundingBox_ExcludesFarPoints(t *testing.T) {
	center := types.Point{Lat: 6.5244, Lng: 3.3792}
	box := BoundingBox(center, 2.0)

	far := types.Point{Lat: 6.6018, Lng: 3.3515} // Ikeja, ~9km away
	if box.Contains(far) {
		t.Errorf("box should not contain a point %0.1fkm away", HaversineKm(center, far))
	}
}
