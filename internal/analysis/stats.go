// Package analysis is the scoring and alerting engine. Every function here is
// a pure computation over an entry snapshot; anything time-windowed takes an
// explicit reference instant so callers and tests control the clock.
package analysis

import "math"

// anomalyStdDevThreshold flags a Bristol series whose spread covers most of
// the 1 to 7 scale, i.e. alternating constipation and diarrhea rather than a
// stable baseline.
const anomalyStdDevThreshold = 1.5

// Stats holds the population moments of a Bristol type series.
type Stats struct {
	Mean     float64
	Variance float64
	StdDev   float64
}

// IsAnomalous reports erratic stool form. A single-element series has
// variance 0 and is never anomalous.
func (s Stats) IsAnomalous() bool {
	return s.StdDev > anomalyStdDevThreshold
}

// BristolStats computes unweighted population mean, variance, and standard
// deviation. No smoothing, no outlier rejection, no recency weighting.
// values must be non-empty; the orchestrator short-circuits on empty input.
func BristolStats(values []int) Stats {
	sum := 0
	for _, v := range values {
		sum += v
	}
	mean := float64(sum) / float64(len(values))

	var sq float64
	for _, v := range values {
		d := float64(v) - mean
		sq += d * d
	}
	variance := sq / float64(len(values))

	return Stats{
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}
}
