package api

import (
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LessUp/PoopRecorder/internal/auth"
	"github.com/LessUp/PoopRecorder/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

func PostEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(auth.UserIDKey)

		var body service.EntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateEntryRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}
		if err := service.ValidateEntryDate(body.TimestampMinute, app.Now()); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid date")
			return
		}

		entry, err := service.CreateEntry(c.Request.Context(), app.EntryRepo(), userID, &body, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save entry")
			return
		}

		HandleCreated(c, app.Logger(), entry, nil)
	}
}

func GetEntries(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(auth.UserIDKey)

		limit, err := parseBoundedInt(c.Query("limit"), defaultListLimit, 1, maxListLimit)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid limit")
			return
		}
		offset, err := parseBoundedInt(c.Query("offset"), 0, 0, 1<<30)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid offset")
			return
		}

		entries, err := app.EntryRepo().ListEntries(c.Request.Context(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries")
			return
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].TimestampMinute.After(entries[j].TimestampMinute)
		})

		total := len(entries)
		if offset > total {
			offset = total
		}
		end := offset + limit
		if end > total {
			end = total
		}

		meta := map[string]any{
			"total":   total,
			"limit":   limit,
			"offset":  offset,
			"hasMore": end < total,
		}
		HandleSuccess(c, app.Logger(), entries[offset:end], meta)
	}
}

func parseBoundedInt(raw string, fallback, min, max int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v, nil
}
