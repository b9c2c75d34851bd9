package dashboard

import (
	"github.com/gin-gonic/gin"
	"github.com/unionscout/unionscout/internal/api/auth"
	"github.com/unionscout/unionscout/pkg/utils"
)

// Register routes for the dashboard module
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config) {
	// Create base group for dashboard routes
	group := g.Group("/dashboard")
	group.Use(auth.APIKeyHandler(cfg))

	group.GET("/stats", GetStats) // Aggregate statistics for the dashboard
}
