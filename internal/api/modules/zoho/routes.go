package zoho_module

import (
	"github.com/gin-gonic/gin"
	"github.com/unionscout/unionscout/internal/api/auth"
	"github.com/unionscout/unionscout/pkg/utils"
)

// Register routes for the zoho module
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config) {
	// Create base group for zoho routes
	group := g.Group("/zoho")

	// OAuth handshake routes: the provider redirects the browser here,
	// so these stay outside the API key guard
	group.GET("/auth", InitiateAuth)       // Redirect to the provider consent screen
	group.GET("/callback", HandleCallback) // Exchange the authorization code

	// Protected routes
	protected := group.Group("/")
	protected.Use(auth.APIKeyHandler(cfg))
	protected.POST("/sync", SyncLeads)   // Submit a batch of leads to the CRM
	protected.GET("/stats", GetStats)    // Lead statistics from the CRM
	protected.GET("/tokens", GetTokens)  // Connection status (tokens redacted)
}
