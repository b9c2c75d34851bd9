package unions

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unionscout/unionscout/internal/stores/union"
	"github.com/unionscout/unionscout/pkg/sdk"
)

// ListUnions handles GET requests to list unions with filters and pagination
func ListUnions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	opts := union.ListOptions{
		State:     c.Query("state"),
		Country:   c.Query("country"),
		UnionType: c.Query("unionType"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      page,
		PageSize:  pageSize,
	}

	unions, total, err := GetStore().ListUnions(c.Request.Context(), opts)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to list unions", err.Error()).AsGinResponse())
		return
	}

	data := gin.H{
		"unions": unions,
		"meta": sdk.ListMeta{
			Page:     max(page, 1),
			PageSize: pageSize,
			Total:    total,
		},
	}
	c.JSON(sdk.NewSuccessResponse("Unions retrieved successfully", data).AsGinResponse())
}

// GetUnion handles GET requests for a single union by ID
func GetUnion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid union id", err.Error()).AsGinResponse())
		return
	}

	u, err := GetStore().GetUnion(c.Request.Context(), id)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Union not found", err.Error()).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Union retrieved successfully", u).AsGinResponse())
}

// DeleteUnion handles DELETE requests to remove a union
func DeleteUnion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid union id", err.Error()).AsGinResponse())
		return
	}

	if err := GetStore().DeleteUnion(c.Request.Context(), id); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Failed to delete union", err.Error()).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccess("Union deleted successfully").AsGinResponse())
}
