package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unionscout/unionscout/pkg/sdk"
	"github.com/unionscout/unionscout/pkg/utils"
)

// APIKeyHandler validates the X-API-KEY header against the configured
// API key. When no API_KEY is configured, all requests pass through.
func APIKeyHandler(cfg *utils.Config) gin.HandlerFunc {
	apiKey := cfg.Get("API_KEY")

	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}

		if c.GetHeader("X-API-KEY") != apiKey {
			c.JSON(sdk.NewErrorResponse(http.StatusUnauthorized, "Invalid API key", nil).AsGinResponse())
			c.Abort()
			return
		}

		c.Next()
	}
}
