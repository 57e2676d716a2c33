package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/LessUp/PoopRecorder/internal"
)

// Risk tiers derived from the findings-based score.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// healthScore is the findings-based heuristic: start at 100, penalize each of
// the 10 most recent entries whose Bristol type sits outside the 3 to 4 band
// (|type - 3.5| > 1.5, i.e. 1, 2, 6 and 7), then 10 points per finding.
func healthScore(sorted []internal.Entry, findingsCount int) int {
	score := 100.0

	recent := sorted
	if len(recent) > 10 {
		recent = recent[:10]
	}
	for _, e := range recent {
		if math.Abs(float64(e.BristolType)-3.5) > 1.5 {
			score -= 5
		}
	}

	score -= float64(findingsCount) * 10

	return clampScore(score)
}

func riskLevel(score int) string {
	switch {
	case score < 60:
		return RiskHigh
	case score < 80:
		return RiskMedium
	default:
		return RiskLow
	}
}

func clampScore(score float64) int {
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// ScoreBreakdown explains the rolling 30-day dashboard score.
type ScoreBreakdown struct {
	FrequencyVariance float64 `json:"frequencyVariance"`
	MedianBristolType int     `json:"medianBristolType"`
	AverageSmellScore float64 `json:"averageSmellScore"`
	EntriesCount      int     `json:"entriesCount"`
}

// DashboardScore is the rolling 30-day score. Score is nil when the window
// holds no entries: "no data" is distinct from "perfect health".
type DashboardScore struct {
	Score     *int            `json:"score"`
	Breakdown *ScoreBreakdown `json:"breakdown,omitempty"`
}

// ThirtyDayScore computes the dashboard score over entries from the last 30
// days before now: penalties for day-to-day frequency irregularity, for a
// median Bristol type away from 4, and for an elevated mean smell score.
// This is deliberately a separate formula from healthScore; the two answer
// different questions and feed different endpoints.
func ThirtyDayScore(entries []internal.Entry, now time.Time) DashboardScore {
	cutoff := now.AddDate(0, 0, -30)

	var window []internal.Entry
	for _, e := range entries {
		if e.TimestampMinute.After(cutoff) {
			window = append(window, e)
		}
	}
	if len(window) == 0 {
		return DashboardScore{}
	}

	perDay := map[string]int{}
	for _, e := range window {
		perDay[e.TimestampMinute.UTC().Format("2006-01-02")]++
	}
	counts := make([]float64, 0, len(perDay))
	for _, c := range perDay {
		counts = append(counts, float64(c))
	}
	var sum float64
	for _, c := range counts {
		sum += c
	}
	avg := sum / float64(len(counts))
	var variance float64
	for _, c := range counts {
		variance += (c - avg) * (c - avg)
	}
	variance /= float64(len(counts))

	bristol := make([]int, len(window))
	for i, e := range window {
		bristol[i] = e.BristolType
	}
	sort.Ints(bristol)
	median := bristol[len(bristol)/2]

	var smellSum float64
	for _, e := range window {
		smellSum += float64(e.SmellScore)
	}
	smellAvg := smellSum / float64(len(window))

	score := 100.0
	score -= math.Min(40, variance*10)
	score -= math.Abs(float64(median)-4) * 10
	score -= math.Max(0, smellAvg-3) * 10

	final := clampScore(score)
	return DashboardScore{
		Score: &final,
		Breakdown: &ScoreBreakdown{
			FrequencyVariance: math.Round(variance*100) / 100,
			MedianBristolType: median,
			AverageSmellScore: math.Round(smellAvg*100) / 100,
			EntriesCount:      len(window),
		},
	}
}
