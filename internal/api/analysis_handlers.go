package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LessUp/PoopRecorder/internal/analysis"
	"github.com/LessUp/PoopRecorder/internal/auth"
)

// GetAnalysis runs the full analysis report over all of the user's entries.
func GetAnalysis(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(auth.UserIDKey)

		entries, err := app.EntryRepo().ListEntries(c.Request.Context(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries for analysis")
			return
		}

		result := analysis.Analyze(entries, app.Now())
		HandleSuccess(c, app.Logger(), result, nil)
	}
}

// GetScore serves the rolling 30-day dashboard score. With no entries in the
// window the score is null, not zero.
func GetScore(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(auth.UserIDKey)

		entries, err := app.EntryRepo().ListEntries(c.Request.Context(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries for score")
			return
		}

		result := analysis.ThirtyDayScore(entries, app.Now())
		if result.Score == nil {
			HandleSuccess(c, app.Logger(), result, map[string]any{"message": "Insufficient data for scoring", "entriesCount": 0})
			return
		}
		HandleSuccess(c, app.Logger(), result, nil)
	}
}

// GetAlerts serves the 7-day frequency/symptom alert scan.
func GetAlerts(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(auth.UserIDKey)

		entries, err := app.EntryRepo().ListEntries(c.Request.Context(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries for alerts")
			return
		}

		now := app.Now()
		cutoff := now.AddDate(0, 0, -7)
		recentCount := 0
		for _, e := range entries {
			if e.TimestampMinute.After(cutoff) {
				recentCount++
			}
		}

		alerts := analysis.ScanAlerts(entries, now)
		meta := map[string]any{
			"recentEntriesCount": recentCount,
			"alertsCount":        len(alerts),
		}
		HandleSuccess(c, app.Logger(), alerts, meta)
	}
}

var validPeriods = map[string]bool{"week": true, "month": true, "quarter": true, "year": true}

// GetFrequency buckets entry counts per day (week/month periods) or per
// month (quarter/year periods), optionally bounded by startDate/endDate.
func GetFrequency(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(auth.UserIDKey)

		period := c.DefaultQuery("period", "week")
		if !validPeriods[period] {
			HandleError(c, app.Logger(), errors.New("period must be one of: week, month, quarter, year"), 400, "Invalid period")
			return
		}

		startDate, err := parseOptionalDate(c.Query("startDate"))
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid start date")
			return
		}
		endDate, err := parseOptionalDate(c.Query("endDate"))
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid end date")
			return
		}

		entries, err := app.EntryRepo().ListEntries(c.Request.Context(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries for frequency")
			return
		}

		layout := "2006-01-02"
		if period == "quarter" || period == "year" {
			layout = "2006-01"
		}

		counts := map[string]int{}
		total := 0
		for _, e := range entries {
			if startDate != nil && e.TimestampMinute.Before(*startDate) {
				continue
			}
			if endDate != nil && e.TimestampMinute.After(*endDate) {
				continue
			}
			counts[e.TimestampMinute.UTC().Format(layout)]++
			total++
		}

		data := map[string]any{"period": period, "counts": counts}
		meta := map[string]any{"totalEntries": total}
		HandleSuccess(c, app.Logger(), data, meta)
	}
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if t, err = time.Parse("2006-01-02", raw); err != nil {
			return nil, err
		}
	}
	return &t, nil
}
