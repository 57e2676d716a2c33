package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/LessUp/PoopRecorder/internal"
)

// AlertTagCustom is the categorical alert tag emitted by rule checks.
const AlertTagCustom = "custom"

// AnalysisResult is the composed report returned to callers. Computed fresh
// per request and never persisted.
type AnalysisResult struct {
	Score      int         `json:"score"`
	RiskLevel  string      `json:"riskLevel"`
	Findings   []string    `json:"findings"`
	References []Reference `json:"references"`
	Alerts     []string    `json:"alerts"`
}

// Analyze is the single entry point: it runs the rule checks in a fixed
// order (Rome IV, anomaly, red flags), scores the result, and derives the
// risk tier. Empty or nil input yields an optimistic default, not an error.
func Analyze(entries []internal.Entry, now time.Time) AnalysisResult {
	if len(entries) == 0 {
		return AnalysisResult{
			Score:      100,
			RiskLevel:  RiskLow,
			Findings:   []string{"No data available for analysis."},
			References: []Reference{},
			Alerts:     []string{},
		}
	}

	sorted := make([]internal.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TimestampMinute.After(sorted[j].TimestampMinute)
	})

	findings := []string{}
	references := []Reference{}
	alerts := []string{}

	if checkRomeIV(sorted, now) {
		findings = append(findings, "Potential IBS symptoms detected (Rome IV Criteria).")
		references = append(references, romeIVReference)
		alerts = append(alerts, AlertTagCustom)
	}

	stats := BristolStats(bristolValues(sorted))
	if stats.IsAnomalous() {
		findings = append(findings, fmt.Sprintf("Irregular stool consistency detected (Variance: %.2f).", stats.Variance))
		references = append(references, bristolScaleReference)
	}

	if redFlags := checkRedFlags(sorted); len(redFlags) > 0 {
		findings = append(findings, redFlags...)
		alerts = append(alerts, AlertTagCustom)
	}

	score := healthScore(sorted, len(findings))

	return AnalysisResult{
		Score:      score,
		RiskLevel:  riskLevel(score),
		Findings:   findings,
		References: references,
		Alerts:     dedupeTags(alerts),
	}
}

func bristolValues(entries []internal.Entry) []int {
	values := make([]int, len(entries))
	for i, e := range entries {
		values[i] = e.BristolType
	}
	return values
}

func dedupeTags(tags []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
