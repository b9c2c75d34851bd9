package sdk

import (
	"encoding/json"
)

// StatusType describes the outcome of an API call
type StatusType string

const (
	StatusSuccess StatusType = "success"
	StatusFail    StatusType = "fail"
	StatusError   StatusType = "error"
)

// ApiResponse represents the standard API response envelope
type ApiResponse[T any] struct {
	Status  StatusType `json:"status"`          // Status message
	Code    int        `json:"code"`            // Status code
	Message string     `json:"message"`         // Human-readable message
	Data    T          `json:"data,omitempty"`  // Optional data field for successful responses
	Error   any        `json:"error,omitempty"` // Optional error field for error responses
}

// AsGinResponse converts the ApiResponse to a format suitable for Gin handlers
func (r ApiResponse[T]) AsGinResponse() (int, any) {
	return r.Code, r
}

// AsJSON converts the ApiResponse to a JSON string
func (r ApiResponse[T]) AsJSON() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func NewSuccess(message string) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  StatusSuccess,
		Code:    200,
		Message: message,
	}
}

func NewSuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  StatusSuccess,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(code int, message string, err any) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  StatusError,
		Code:    code,
		Message: message,
		Error:   err,
	}
}

/** Requests */

// SearchUnionsRequest holds the location parameters for a union web search
type SearchUnionsRequest struct {
	Country   string `json:"country" binding:"required"`
	State     string `json:"state" binding:"required"`
	UnionType string `json:"union_type"`
	Industry  string `json:"industry"`
}

// DeepSearchRequest asks for a detailed search on a single union
type DeepSearchRequest struct {
	UnionName string `json:"union_name" binding:"required"`
}

// ParseUnionsRequest carries raw search output to be parsed into unions
type ParseUnionsRequest struct {
	MarkdownText string             `json:"markdown_text" binding:"required"`
	SearchParams SearchUnionsRequest `json:"search_params"`
	Sources      []Source           `json:"sources"`
}

// GenerateLeadsRequest holds the union details used to prompt lead generation
type GenerateLeadsRequest struct {
	UnionID   string `json:"union_id" binding:"required"`
	UnionName string `json:"union_name" binding:"required"`
	UnionType string `json:"union_type"`
	Industry  string `json:"industry"`
	State     string `json:"state" binding:"required"`
	Country   string `json:"country" binding:"required"`
}

// GenerateReportRequest holds the union details used to prompt a report
type GenerateReportRequest struct {
	UnionName string `json:"union_name" binding:"required"`
	State     string `json:"state" binding:"required"`
	Country   string `json:"country" binding:"required"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	UnionType string `json:"union_type"`
	Industry  string `json:"industry"`
}

/** Responses */

// Source is a web citation returned alongside AI search results
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// ResearchResult is the text outcome of an AI web search
type ResearchResult struct {
	Results     string   `json:"results"`
	Sources     []Source `json:"sources"`
	SearchQuery string   `json:"search_query,omitempty"`
}

// ListMeta describes pagination info for list responses
type ListMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// SyncReport summarizes a CRM sync attempt. The CRM-level counts and the
// local database update counts are tracked separately: a lead can be
// created in the CRM and still fail its local back-write.
type SyncReport struct {
	SuccessCount         int   `json:"successful_leads_count"`
	FailureCount         int   `json:"failed_leads_count"`
	Failures             []any `json:"failed_details,omitempty"`
	DBUpdateSuccessCount int   `json:"database_updates_successful"`
	DBUpdateFailureCount int   `json:"database_updates_failed"`
}

// CRMStats summarizes lead statistics pulled from the CRM
type CRMStats struct {
	TotalLeads      int            `json:"total_leads"`
	RecentLeads     int            `json:"recent_leads"`
	WeeklyLeads     int            `json:"weekly_leads"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
	Connected       bool           `json:"connected"`
	LastUpdated     string         `json:"last_updated"`
}

// DashboardStats aggregates local database counts with CRM totals
type DashboardStats struct {
	TotalUnions   int64 `json:"total_unions"`
	TotalLeads    int64 `json:"total_leads"`
	SyncedLeads   int64 `json:"synced_leads"`
	TotalSearches int64 `json:"total_searches"`
	RecentUnions  int64 `json:"recent_unions"`
	RecentLeads   int64 `json:"recent_leads"`
	UnionsGrowth  int   `json:"unions_growth"`
	LeadsGrowth   int   `json:"leads_growth"`
	SyncRate      int   `json:"sync_rate"`

	CRM struct {
		Connected   bool `json:"connected"`
		TotalLeads  int  `json:"total_leads"`
		RecentLeads int  `json:"recent_leads"`
	} `json:"crm"`

	LastUpdated string `json:"last_updated"`
}

// ConnectionStatus reports whether a CRM credential is on record.
// Token values themselves are never returned.
type ConnectionStatus struct {
	Connected bool   `json:"connected"`
	UserID    string `json:"user_id,omitempty"`
	ExpiresAt string `json:"access_token_expires_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
