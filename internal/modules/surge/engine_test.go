package surge

import (
	"testing"
	"time"
)

// 2026-08-26 is a Wednesday, 2026-08-29 a Saturday.
func weekdayAt(hour int) time.Time {
	return time.Date(2026, 8, 26, hour, 30, 0, 0, time.UTC)
}

func weekendAt(hour int) time.Time {
	return time.Date(2026, 8, 29, hour, 30, 0, 0, time.UTC)
}

func TestCompute_Buckets(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		wantReason string
	}{
		{"weekday morning rush", weekdayAt(8), "Morning rush hour"},
		{"weekday evening rush", weekdayAt(18), "Evening rush hour"},
		{"weekday late night", weekdayAt(23), "Late-night surcharge"},
		{"early morning", weekdayAt(3), "Late-night surcharge"},
		{"weekend late night", weekendAt(2), "Late-night surcharge"},
		{"weekend evening", weekendAt(19), "Weekend evening demand"},
		{"weekday midday, no surge", weekdayAt(14), ""},
		{"weekend midday, no surge", weekendAt(14), ""},
		{"weekend morning, no rush bucket", weekendAt(8), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute("uber", tt.now)
			if got.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if tt.wantReason == "" && got.Multiplier != 1.0 {
				t.Errorf("multiplier = %v, want exactly 1.0 outside buckets", got.Multiplier)
			}
			if tt.wantReason != "" && !got.Surged() {
				t.Errorf("multiplier = %v, want > 1.0 inside bucket", got.Multiplier)
			}
		})
	}
}

func TestCompute_Pure(t *testing.T) {
	now := weekdayAt(8)
	first := Compute("bolt", now)
	for i := 0; i < 100; i++ {
		if got := Compute("bolt", now); got != first {
			t.Fatalf("call %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestCompute_ServicesDifferWithinBucket(t *testing.T) {
	now := weekdayAt(8)
	ids := []string{"uber", "bolt", "indrive", "gokada", "shuttlers"}
	seen := map[float64]bool{}
	for _, id := range ids {
		seen[Compute(id, now).Multiplier] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected per-service variation within a bucket, got a single multiplier")
	}
}

func TestCompute_Clamped(t *testing.T) {
	ids := []string{"uber", "bolt", "indrive", "rida", "lagride", "ekocab",
		"ogataxi", "ocar", "t40", "gokada", "maxng", "safeboda", "oride",
		"shuttlers", "plentywaka", "treepz"}
	times := []time.Time{weekdayAt(8), weekdayAt(18), weekdayAt(23), weekendAt(19), weekdayAt(14)}
	for _, id := range ids {
		for _, now := range times {
			got := Compute(id, now)
			if got.Multiplier < 1.0 || got.Multiplier > 2.5 {
				t.Errorf("Compute(%s, %v) = %v, outside [1.0, 2.5]", id, now, got.Multiplier)
			}
		}
	}
}
