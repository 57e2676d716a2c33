package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/LessUp/PoopRecorder/internal"
)

const (
	romeIVWindowDays    = 90
	romeIVMinEntries    = 10
	romeIVMinWeeks      = 3
	romeIVAbnormalRatio = 0.25
	redFlagWindow       = 5
)

// painKeywords mark an entry as symptomatic when any recorded symptom
// contains one of them, case-insensitively.
var painKeywords = []string{"pain", "cramp", "ache", "discomfort", "bloating", "stomach ache", "abdominal"}

func hasPainKeyword(symptoms []string) bool {
	for _, s := range symptoms {
		lower := strings.ToLower(s)
		for _, k := range painKeywords {
			if strings.Contains(lower, k) {
				return true
			}
		}
	}
	return false
}

// checkRomeIV approximates the Rome IV recurrent-symptom criteria for IBS
// over the last 90 days: recurrent pain-like symptoms across at least 3
// distinct weeks, associated with an abnormal stool-form ratio above 25%.
// Fewer than 10 entries in the window is treated as insufficient data.
func checkRomeIV(entries []internal.Entry, now time.Time) bool {
	cutoff := now.AddDate(0, 0, -romeIVWindowDays)

	var recent []internal.Entry
	for _, e := range entries {
		if !e.TimestampMinute.Before(cutoff) {
			recent = append(recent, e)
		}
	}
	if len(recent) < romeIVMinEntries {
		return false
	}

	// Week identifier is year plus a coarse day-of-month/7 bucket, not a
	// true ISO week; firing behavior near month boundaries depends on it.
	distinctWeeks := map[string]struct{}{}
	for _, e := range recent {
		if hasPainKeyword(e.Symptoms) {
			weekID := fmt.Sprintf("%d-W%d", e.TimestampMinute.Year(), e.TimestampMinute.Day()/7)
			distinctWeeks[weekID] = struct{}{}
		}
	}
	if len(distinctWeeks) < romeIVMinWeeks {
		return false
	}

	abnormal := 0
	for _, e := range recent {
		if e.BristolType <= 2 || e.BristolType >= 6 {
			abnormal++
		}
	}
	ratio := float64(abnormal) / float64(len(recent))

	return ratio > romeIVAbnormalRatio
}

// checkRedFlags scans only the 5 most recent entries for colors suggesting
// GI bleeding. Duration-based red flags (e.g. chronic type 7) are not
// covered here.
func checkRedFlags(sorted []internal.Entry) []string {
	var flags []string

	recent := sorted
	if len(recent) > redFlagWindow {
		recent = recent[:redFlagWindow]
	}

	for _, e := range recent {
		if e.Color == internal.ColorRed || e.Color == internal.ColorBlack {
			flags = append(flags, "CRITICAL: Red or Black stool detected. This may indicate bleeding (Red -> Lower GI, Black/Tarry -> Upper GI). Consult a doctor immediately.")
			break
		}
	}

	return flags
}
