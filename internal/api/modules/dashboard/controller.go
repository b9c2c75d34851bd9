package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unionscout/unionscout/pkg/sdk"
)

// GetStats returns the dashboard statistics snapshot
func GetStats(c *gin.Context) {
	stats, err := GetService().Stats(c.Request.Context())
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to compute dashboard statistics", err.Error()).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Dashboard statistics retrieved successfully", stats).AsGinResponse())
}
