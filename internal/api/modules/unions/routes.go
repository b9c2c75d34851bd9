package unions

import (
	"github.com/gin-gonic/gin"
	"github.com/unionscout/unionscout/internal/api/auth"
	"github.com/unionscout/unionscout/pkg/utils"
)

// Register routes for the unions module
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config) {
	// Create base group for union routes
	group := g.Group("/unions")
	group.Use(auth.APIKeyHandler(cfg))

	group.GET("", ListUnions)         // List unions with filters and pagination
	group.GET("/:id", GetUnion)       // Get a single union by ID
	group.DELETE("/:id", DeleteUnion) // Remove a union
}
