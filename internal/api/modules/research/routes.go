package research_module

import (
	"github.com/gin-gonic/gin"
	"github.com/unionscout/unionscout/internal/api/auth"
	"github.com/unionscout/unionscout/pkg/utils"
)

// Register routes for the research module
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config) {
	// Create base group for research routes
	group := g.Group("/research")
	group.Use(auth.APIKeyHandler(cfg))

	group.POST("/search", SearchUnions)          // AI web search for unions in a location
	group.POST("/deep-search", DeepSearchUnion)  // Detailed AI search for one union
	group.POST("/parse", ParseUnions)            // Parse raw search output and save unions
	group.POST("/leads", GenerateLeads)          // Generate leads for a union
	group.POST("/report", GenerateReport)        // Generate a markdown report about a union
}
