package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client wraps calls to the unionscout backend
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// SearchUnions runs an AI web search for unions in a location
func (c *Client) SearchUnions(ctx context.Context, req *SearchUnionsRequest) (*ResearchResult, error) {
	var out ApiResponse[ResearchResult]
	if err := c.doJSON(ctx, http.MethodPost, "/api/research/search", req, &out); err != nil {
		return nil, err
	}
	return unwrap(&out)
}

// DeepSearchUnion runs a detailed AI web search on a single union
func (c *Client) DeepSearchUnion(ctx context.Context, unionName string) (*ResearchResult, error) {
	var out ApiResponse[ResearchResult]
	req := &DeepSearchRequest{UnionName: unionName}
	if err := c.doJSON(ctx, http.MethodPost, "/api/research/deep-search", req, &out); err != nil {
		return nil, err
	}
	return unwrap(&out)
}

// GenerateReport produces a markdown report about a union
func (c *Client) GenerateReport(ctx context.Context, req *GenerateReportRequest) (*ResearchResult, error) {
	var out ApiResponse[ResearchResult]
	if err := c.doJSON(ctx, http.MethodPost, "/api/research/report", req, &out); err != nil {
		return nil, err
	}
	return unwrap(&out)
}

// SyncLeads submits leads by ID for CRM sync and returns the sync report
func (c *Client) SyncLeads(ctx context.Context, leadIDs []string) (*SyncReport, error) {
	var out ApiResponse[SyncReport]
	req := map[string][]string{"lead_ids": leadIDs}
	if err := c.doJSON(ctx, http.MethodPost, "/api/zoho/sync", req, &out); err != nil {
		return nil, err
	}
	return unwrap(&out)
}

// SyncUnionLeads submits every not-yet-synced lead of a union for CRM sync
func (c *Client) SyncUnionLeads(ctx context.Context, unionID string) (*SyncReport, error) {
	var out ApiResponse[SyncReport]
	req := map[string]string{"union_id": unionID}
	if err := c.doJSON(ctx, http.MethodPost, "/api/zoho/sync", req, &out); err != nil {
		return nil, err
	}
	return unwrap(&out)
}

// CRMStats fetches lead statistics from the connected CRM
func (c *Client) CRMStats(ctx context.Context) (*CRMStats, error) {
	var out ApiResponse[CRMStats]
	if err := c.doJSON(ctx, http.MethodGet, "/api/zoho/stats", nil, &out); err != nil {
		return nil, err
	}
	return unwrap(&out)
}

// DashboardStats fetches the aggregate dashboard statistics
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out ApiResponse[DashboardStats]
	if err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return unwrap(&out)
}

// ListLeadsQuery holds the query parameters for listing leads
type ListLeadsQuery struct {
	UnionID   string
	Page      int
	PageSize  int
	Search    string
	SortBy    string
	SortOrder string
}

// ListLeads fetches a page of leads for a union as raw JSON records
func (c *Client) ListLeads(ctx context.Context, q *ListLeadsQuery) ([]map[string]any, *ListMeta, error) {
	values := url.Values{}
	values.Set("unionId", q.UnionID)
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
		values.Set("sortOrder", q.SortOrder)
	}

	var out ApiResponse[struct {
		Leads []map[string]any `json:"leads"`
		Meta  ListMeta         `json:"meta"`
	}]
	if err := c.doJSON(ctx, http.MethodGet, "/api/leads?"+values.Encode(), nil, &out); err != nil {
		return nil, nil, err
	}
	data, err := unwrap(&out)
	if err != nil {
		return nil, nil, err
	}
	return data.Leads, &data.Meta, nil
}

// unwrap checks the envelope status and returns the data on success
func unwrap[T any](out *ApiResponse[T]) (*T, error) {
	switch out.Status {
	case StatusFail:
		return nil, fmt.Errorf("request failed: %s", out.Message)
	case StatusError:
		return nil, fmt.Errorf("request error (%s): %v", out.Message, out.Error)
	}
	return &out.Data, nil
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-KEY", c.apiKey)
	}

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// On error, read body and return error
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("[BACKEND]: backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}
