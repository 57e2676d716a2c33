package analysis

import (
	"strings"
	"time"

	"github.com/LessUp/PoopRecorder/internal"
)

const (
	AlertConstipation = "constipation"
	AlertDiarrhea     = "diarrhea"
	AlertSymptoms     = "symptoms"

	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Alert is a lightweight signal produced by the 7-day scan, independent of
// the full analysis report.
type Alert struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// concerningSymptoms trigger the symptoms alert on an exact case-insensitive
// match.
var concerningSymptoms = map[string]struct{}{
	"blood":       {},
	"severe_pain": {},
	"fever":       {},
	"vomiting":    {},
}

// ScanAlerts runs three independent checks over entries from the last 7 days
// before now. Low recording frequency is used as a constipation proxy; any
// subset of the three alerts may fire.
func ScanAlerts(entries []internal.Entry, now time.Time) []Alert {
	cutoff := now.AddDate(0, 0, -7)

	var recent []internal.Entry
	for _, e := range entries {
		if e.TimestampMinute.After(cutoff) {
			recent = append(recent, e)
		}
	}

	alerts := []Alert{}

	if len(recent) < 4 {
		alerts = append(alerts, Alert{
			Type:      AlertConstipation,
			Message:   "Few entries recorded in the past week; possible constipation risk.",
			Severity:  SeverityMedium,
			Timestamp: now,
		})
	}

	loose := 0
	for _, e := range recent {
		if e.BristolType >= 6 {
			loose++
		}
	}
	if loose >= 3 {
		alerts = append(alerts, Alert{
			Type:      AlertDiarrhea,
			Message:   "Recent Bristol types are elevated; possible diarrhea risk.",
			Severity:  SeverityHigh,
			Timestamp: now,
		})
	}

	for _, e := range recent {
		if hasConcerningSymptom(e.Symptoms) {
			alerts = append(alerts, Alert{
				Type:      AlertSymptoms,
				Message:   "Concerning symptoms detected; consider consulting a doctor.",
				Severity:  SeverityHigh,
				Timestamp: now,
			})
			break
		}
	}

	return alerts
}

func hasConcerningSymptom(symptoms []string) bool {
	for _, s := range symptoms {
		if _, ok := concerningSymptoms[strings.ToLower(s)]; ok {
			return true
		}
	}
	return false
}
