package leads

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unionscout/unionscout/internal/stores/lead"
	"github.com/unionscout/unionscout/pkg/sdk"
)

// createLeadsRequest is the request body for saving a batch of leads
type createLeadsRequest struct {
	Leads []lead.Lead `json:"leads" binding:"required"`
}

// ListLeads handles GET requests to list leads for a union
func ListLeads(c *gin.Context) {
	unionID, err := uuid.Parse(c.Query("unionId"))
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "unionId is required", nil).AsGinResponse())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	opts := lead.ListOptions{
		UnionID:   unionID,
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.Query("sortOrder"),
		Page:      page,
		PageSize:  pageSize,
	}

	leads, total, err := GetStore().ListLeads(c.Request.Context(), opts)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to list leads", err.Error()).AsGinResponse())
		return
	}

	data := gin.H{
		"leads": leads,
		"meta": sdk.ListMeta{
			Page:     max(page, 1),
			PageSize: pageSize,
			Total:    total,
		},
	}
	c.JSON(sdk.NewSuccessResponse("Leads retrieved successfully", data).AsGinResponse())
}

// CreateLeads handles POST requests to save a batch of leads
func CreateLeads(c *gin.Context) {
	var req createLeadsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}
	if len(req.Leads) == 0 {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "No leads provided", nil).AsGinResponse())
		return
	}

	// Validate required fields before touching storage
	leads := make([]*lead.Lead, 0, len(req.Leads))
	for i := range req.Leads {
		l := req.Leads[i]
		if l.LastName == "" || l.CompanyName == "" {
			c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "last_name and company_name are required for every lead", nil).AsGinResponse())
			return
		}
		leads = append(leads, &l)
	}

	if err := GetStore().CreateLeads(c.Request.Context(), leads); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to save leads", err.Error()).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Leads saved successfully", gin.H{"saved": len(leads)}).AsGinResponse())
}
