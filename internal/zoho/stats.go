package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Stats summarizes the lead module on the CRM side
type Stats struct {
	TotalLeads      int            `json:"total_leads"`
	RecentLeads     int            `json:"recent_leads"`
	WeeklyLeads     int            `json:"weekly_leads"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
	Connected       bool           `json:"connected"`
	LastUpdated     time.Time      `json:"last_updated"`
}

// statsLead is the subset of CRM lead fields the stats endpoint reads
type statsLead struct {
	ID          string `json:"id"`
	CreatedTime string `json:"Created_Time"`
	LeadStatus  string `json:"Lead_Status"`
}

// statsResponse is Zoho's paged lead listing response
type statsResponse struct {
	Data []statsLead `json:"data"`
	Info struct {
		Count int `json:"count"`
	} `json:"info"`
}

// Stats fetches lead statistics from the CRM: totals, 30-day and 7-day
// counts, and a breakdown by lead status.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	url := c.apiURL + "/crm/v6/Leads?fields=id,Created_Time,Lead_Status&per_page=200"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats request: %w", err)
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stats request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &AuthError{Detail: string(body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result statsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	now := time.Now()
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	sevenDaysAgo := now.AddDate(0, 0, -7)

	stats := &Stats{
		TotalLeads:      result.Info.Count,
		StatusBreakdown: make(map[string]int),
		Connected:       true,
		LastUpdated:     now,
	}
	if stats.TotalLeads == 0 {
		stats.TotalLeads = len(result.Data)
	}

	for _, l := range result.Data {
		status := l.LeadStatus
		if status == "" {
			status = "Unknown"
		}
		stats.StatusBreakdown[status]++

		created, err := time.Parse(time.RFC3339, l.CreatedTime)
		if err != nil {
			continue
		}
		if created.After(thirtyDaysAgo) {
			stats.RecentLeads++
		}
		if created.After(sevenDaysAgo) {
			stats.WeeklyLeads++
		}
	}

	return stats, nil
}
