package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LessUp/PoopRecorder/internal"
)

func alertTypes(alerts []Alert) []string {
	types := make([]string, len(alerts))
	for i, a := range alerts {
		types[i] = a.Type
	}
	return types
}

func TestScanAlertsConstipationOnLowFrequency(t *testing.T) {
	entries := []internal.Entry{
		entryAt(testNow.AddDate(0, 0, -1), 4),
		entryAt(testNow.AddDate(0, 0, -2), 4),
		entryAt(testNow.AddDate(0, 0, -3), 4),
	}

	alerts := ScanAlerts(entries, testNow)
	assert.Equal(t, []string{AlertConstipation}, alertTypes(alerts))
	assert.Equal(t, SeverityMedium, alerts[0].Severity)
	assert.Equal(t, testNow, alerts[0].Timestamp)
}

func TestScanAlertsFourEntriesNoConstipation(t *testing.T) {
	entries := []internal.Entry{
		entryAt(testNow.AddDate(0, 0, -1), 4),
		entryAt(testNow.AddDate(0, 0, -2), 4),
		entryAt(testNow.AddDate(0, 0, -3), 4),
		entryAt(testNow.AddDate(0, 0, -4), 4),
	}

	assert.Empty(t, ScanAlerts(entries, testNow))
}

func TestScanAlertsDiarrheaBoundary(t *testing.T) {
	entries := []internal.Entry{
		entryAt(testNow.AddDate(0, 0, -1), 6),
		entryAt(testNow.AddDate(0, 0, -2), 7),
		entryAt(testNow.AddDate(0, 0, -3), 6),
		entryAt(testNow.AddDate(0, 0, -4), 4),
	}

	alerts := ScanAlerts(entries, testNow)
	assert.Equal(t, []string{AlertDiarrhea}, alertTypes(alerts))
	assert.Equal(t, SeverityHigh, alerts[0].Severity)

	// Only two loose entries: does not fire.
	entries[2].BristolType = 4
	assert.Empty(t, ScanAlerts(entries, testNow))
}

func TestScanAlertsConcerningSymptoms(t *testing.T) {
	entries := []internal.Entry{
		entryAt(testNow.AddDate(0, 0, -1), 4),
		entryAt(testNow.AddDate(0, 0, -2), 4),
		entryAt(testNow.AddDate(0, 0, -3), 4),
		entryAt(testNow.AddDate(0, 0, -4), 4),
	}
	entries[1].Symptoms = []string{"Blood"}

	alerts := ScanAlerts(entries, testNow)
	assert.Equal(t, []string{AlertSymptoms}, alertTypes(alerts))
	assert.Equal(t, SeverityHigh, alerts[0].Severity)
}

func TestScanAlertsSymptomMatchIsExact(t *testing.T) {
	entries := []internal.Entry{
		entryAt(testNow.AddDate(0, 0, -1), 4),
		entryAt(testNow.AddDate(0, 0, -2), 4),
		entryAt(testNow.AddDate(0, 0, -3), 4),
		entryAt(testNow.AddDate(0, 0, -4), 4),
	}
	// Substring is not enough for the concerning-symptom set.
	entries[0].Symptoms = []string{"bloody nose"}

	assert.Empty(t, ScanAlerts(entries, testNow))
}

func TestScanAlertsIgnoresEntriesOutsideWindow(t *testing.T) {
	entries := []internal.Entry{}
	for i := 0; i < 4; i++ {
		e := entryAt(testNow.AddDate(0, 0, -10-i), 7)
		e.Symptoms = []string{"blood"}
		entries = append(entries, e)
	}

	// The window is empty: only the low-frequency signal fires.
	alerts := ScanAlerts(entries, testNow)
	assert.Equal(t, []string{AlertConstipation}, alertTypes(alerts))
}

func TestScanAlertsMultipleIndependentSignals(t *testing.T) {
	entries := []internal.Entry{
		entryAt(testNow.AddDate(0, 0, -1), 6),
		entryAt(testNow.AddDate(0, 0, -2), 6),
		entryAt(testNow.AddDate(0, 0, -3), 6),
	}
	entries[0].Symptoms = []string{"fever"}

	alerts := ScanAlerts(entries, testNow)
	assert.ElementsMatch(t, []string{AlertConstipation, AlertDiarrhea, AlertSymptoms}, alertTypes(alerts))
}
