package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LessUp/PoopRecorder/internal/auth"
)

// RegisterRoutes wires every endpoint onto the router. Auth endpoints and the
// health probe are public; everything else sits behind the bearer middleware.
func RegisterRoutes(r *gin.Engine, app App, tokens *auth.JWTManager) {
	r.Use(RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "timestamp": app.Now()})
	})

	r.POST("/auth/register", Register(app))
	r.POST("/auth/login", Login(app))

	protected := r.Group("/")
	protected.Use(auth.Middleware(tokens))
	protected.POST("/entries", PostEntry(app))
	protected.GET("/entries", GetEntries(app))
	protected.GET("/analytics/analysis", GetAnalysis(app))
	protected.GET("/analytics/score", GetScore(app))
	protected.GET("/analytics/frequency", GetFrequency(app))
	protected.GET("/alerts", GetAlerts(app))
	protected.POST("/privacy/export", ExportData(app))
	protected.POST("/privacy/delete", DeleteData(app))
}
