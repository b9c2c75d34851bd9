package leads

import (
	"github.com/gin-gonic/gin"
	"github.com/unionscout/unionscout/internal/api/auth"
	"github.com/unionscout/unionscout/pkg/utils"
)

// Register routes for the leads module
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config) {
	// Create base group for lead routes
	group := g.Group("/leads")
	group.Use(auth.APIKeyHandler(cfg))

	group.GET("", ListLeads)    // List leads for a union with pagination
	group.POST("", CreateLeads) // Save a batch of leads
}
