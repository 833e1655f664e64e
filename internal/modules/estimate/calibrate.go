package estimate

import (
	"math"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/pricing"
)

// Calibration blend weights: a straight weighted average of the model price
// and the community mean, bucketed by report count.
const (
	fewReportsWeight  = 0.20 // 1-2 reports
	manyReportsWeight = 0.40 // >=3 reports
	crowdsourcedAt    = 3
	maxConfidence     = 95
	maxBoost          = 20
)

// applyCalibration folds the community average into one estimate in place.
// count == 0 leaves the estimate untouched.
func applyCalibration(est *pricing.Estimate, communityAvg float64, count int) {
	if count <= 0 {
		return
	}
	w := fewReportsWeight
	if count >= crowdsourcedAt {
		w = manyReportsWeight
	}

	est.Price = blend(est.Price, communityAvg, w)
	est.PriceLow = blend(est.PriceLow, communityAvg*0.85, w)
	est.PriceHigh = blend(est.PriceHigh, communityAvg*1.15, w)

	boost := count * 4
	if boost > maxBoost {
		boost = maxBoost
	}
	est.Confidence += boost
	if est.Confidence > maxConfidence {
		est.Confidence = maxConfidence
	}

	if count >= crowdsourcedAt {
		est.Source = pricing.SourceCrowdsourced
	} else {
		est.Source = pricing.SourceHybrid
	}
	est.ReportCount = count
}

func blend(modelValue int64, community float64, w float64) int64 {
	return int64(math.Round(float64(modelValue)*(1-w) + community*w))
}
