package research_module

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unionscout/unionscout/internal/research"
	"github.com/unionscout/unionscout/internal/stores/union"
	"github.com/unionscout/unionscout/pkg/sdk"
)

// toSDKSources converts research citations to the response DTO
func toSDKSources(sources []research.Source) []sdk.Source {
	out := make([]sdk.Source, len(sources))
	for i, s := range sources {
		out[i] = sdk.Source{URL: s.URL, Title: s.Title}
	}
	return out
}

// SearchUnions handles POST requests to run an AI web search for unions
func SearchUnions(c *gin.Context) {
	var req sdk.SearchUnionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	params := research.SearchParams{
		Country:   req.Country,
		State:     req.State,
		UnionType: req.UnionType,
		Industry:  req.Industry,
	}

	result, err := GetClient().SearchUnions(c.Request.Context(), params)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to search for unions", err.Error()).AsGinResponse())
		return
	}

	data := sdk.ResearchResult{
		Results:     result.Text,
		Sources:     toSDKSources(result.Sources),
		SearchQuery: params.Query(),
	}
	c.JSON(sdk.NewSuccessResponse("Search completed successfully", data).AsGinResponse())
}

// DeepSearchUnion handles POST requests to run a detailed search on one union
func DeepSearchUnion(c *gin.Context) {
	var req sdk.DeepSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := GetClient().DeepSearchUnion(c.Request.Context(), req.UnionName)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to perform deep search on union", err.Error()).AsGinResponse())
		return
	}

	data := sdk.ResearchResult{
		Results: result.Text,
		Sources: toSDKSources(result.Sources),
	}
	c.JSON(sdk.NewSuccessResponse("Deep search completed successfully", data).AsGinResponse())
}

// ParseUnions handles POST requests to parse raw search output into
// structured unions, record the research run, and save the unions
func ParseUnions(c *gin.Context) {
	var req sdk.ParseUnionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	drafts, err := GetClient().ParseUnions(c.Request.Context(), req.MarkdownText)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to parse union data", err.Error()).AsGinResponse())
		return
	}

	// Record the research run; a failure here is logged but does not
	// block saving the unions
	paramsJSON, _ := json.Marshal(req.SearchParams)
	sourcesJSON, _ := json.Marshal(req.Sources)
	searchResult := &union.SearchResult{
		SearchType:   "location",
		SearchParams: string(paramsJSON),
		RawResults:   req.MarkdownText,
		Sources:      string(sourcesJSON),
		UnionsFound:  len(drafts),
	}
	if err := GetUnionStore().SaveSearchResult(c.Request.Context(), searchResult); err != nil {
		log.Printf("[RESEARCH]: Failed to save search result: %v", err)
	}

	// Save unions stamped with the searched location
	unions := make([]*union.Union, 0, len(drafts))
	for _, d := range drafts {
		unions = append(unions, &union.Union{
			Name:           d.Name,
			Website:        d.Website,
			Email:          d.Email,
			Phone:          d.Phone,
			Address:        d.Address,
			UnionType:      d.UnionType,
			LocalNumber:    d.LocalNumber,
			MembershipInfo: d.MembershipInfo,
			State:          req.SearchParams.State,
			Country:        req.SearchParams.Country,
		})
	}

	if len(unions) > 0 {
		if err := GetUnionStore().CreateUnions(c.Request.Context(), unions); err != nil {
			c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to save unions to database", err.Error()).AsGinResponse())
			return
		}
	}

	data := gin.H{
		"parsed_unions":    drafts,
		"saved_unions":     unions,
		"search_result_id": searchResult.ID,
	}
	c.JSON(sdk.NewSuccessResponse("Unions parsed and saved successfully", data).AsGinResponse())
}

// GenerateLeads handles POST requests to generate leads for a union
func GenerateLeads(c *gin.Context) {
	var req sdk.GenerateLeadsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Missing required union details for lead generation", err.Error()).AsGinResponse())
		return
	}

	unionID, err := uuid.Parse(req.UnionID)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid union id", err.Error()).AsGinResponse())
		return
	}

	params := research.LeadParams{
		UnionID:   unionID,
		UnionName: req.UnionName,
		UnionType: req.UnionType,
		Industry:  req.Industry,
		State:     req.State,
		Country:   req.Country,
	}

	leads, sources, err := GetClient().GenerateLeads(c.Request.Context(), params)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to generate leads", err.Error()).AsGinResponse())
		return
	}

	data := gin.H{
		"results": leads,
		"sources": toSDKSources(sources),
	}
	c.JSON(sdk.NewSuccessResponse("Leads generated successfully", data).AsGinResponse())
}

// GenerateReport handles POST requests to generate a markdown report
func GenerateReport(c *gin.Context) {
	var req sdk.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Union Name, State, and Country are required", err.Error()).AsGinResponse())
		return
	}

	params := research.ReportParams{
		UnionName: req.UnionName,
		State:     req.State,
		Country:   req.Country,
		City:      req.City,
		ZipCode:   req.ZipCode,
		UnionType: req.UnionType,
		Industry:  req.Industry,
	}

	result, err := GetClient().GenerateReport(c.Request.Context(), params)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to generate report", err.Error()).AsGinResponse())
		return
	}

	data := gin.H{
		"report_content": result.Text,
		"sources":        toSDKSources(result.Sources),
	}
	c.JSON(sdk.NewSuccessResponse("Report generated successfully", data).AsGinResponse())
}
