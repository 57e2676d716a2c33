package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LessUp/PoopRecorder/internal/auth"
)

const deleteConfirmation = "DELETE_MY_DATA"

// ExportData returns every entry the user owns in a portable payload.
func ExportData(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(auth.UserIDKey)

		entries, err := app.EntryRepo().ListEntries(c.Request.Context(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to export data")
			return
		}

		data := gin.H{
			"userId":     userID,
			"exportDate": app.Now(),
			"version":    "1.0",
			"entries":    entries,
		}
		meta := map[string]any{"totalEntries": len(entries)}
		HandleSuccess(c, app.Logger(), data, meta)
	}
}

type DeleteRequest struct {
	Confirmation string `json:"confirmation"`
}

// DeleteData removes all of the user's entries. Requires an explicit
// confirmation literal so the endpoint cannot be hit by accident.
func DeleteData(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(auth.UserIDKey)

		var req DeleteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if req.Confirmation != deleteConfirmation {
			HandleError(c, app.Logger(), errors.New("confirmation required"), 400, "Deletion not confirmed")
			return
		}

		deleted, err := app.EntryRepo().DeleteAllEntries(c.Request.Context(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to delete data")
			return
		}

		data := gin.H{
			"userId":    userID,
			"status":    "deleted",
			"deletedAt": app.Now(),
		}
		HandleSuccess(c, app.Logger(), data, map[string]any{"deletedEntries": deleted})
	}
}
