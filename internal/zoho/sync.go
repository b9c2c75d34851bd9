package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/unionscout/unionscout/internal/stores/lead"
)

// crmLead is a lead in Zoho's field schema
type crmLead struct {
	Company        string   `json:"Company"`
	LastName       string   `json:"Last_Name"`
	FirstName      string   `json:"First_Name,omitempty"`
	Email          string   `json:"Email,omitempty"`
	Phone          string   `json:"Phone,omitempty"`
	Website        string   `json:"Website,omitempty"`
	Street         string   `json:"Street,omitempty"`
	City           string   `json:"City,omitempty"`
	State          string   `json:"State,omitempty"`
	ZipCode        string   `json:"Zip_Code,omitempty"`
	Country        string   `json:"Country,omitempty"`
	Industry       string   `json:"Industry,omitempty"`
	AnnualRevenue  *float64 `json:"Annual_Revenue,omitempty"`
	NoOfEmployees  *int     `json:"No_of_Employees,omitempty"`
	LeadSource     string   `json:"Lead_Source,omitempty"`
	LeadStatus     string   `json:"Lead_Status,omitempty"`
	EmailOptOut    bool     `json:"Email_Opt_Out"`
	Description    string   `json:"Description,omitempty"`
}

// recordResult is a per-record outcome in Zoho's bulk-create response
type recordResult struct {
	Code    string         `json:"code"`
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// bulkResponse is Zoho's bulk-create response body
type bulkResponse struct {
	Data []recordResult `json:"data"`
}

// FailureDetail describes one lead the CRM rejected
type FailureDetail struct {
	Index   int            `json:"index"`
	LeadID  string         `json:"lead_id"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// SyncReport summarizes a sync attempt. CRM-level outcomes and local
// database back-write outcomes are orthogonal and both reported.
type SyncReport struct {
	SuccessCount         int             `json:"successful_leads_count"`
	FailureCount         int             `json:"failed_leads_count"`
	Failures             []FailureDetail `json:"failed_details,omitempty"`
	DBUpdateSuccessCount int             `json:"database_updates_successful"`
	DBUpdateFailureCount int             `json:"database_updates_failed"`
}

// mapLead transforms a local lead into Zoho's field schema
func mapLead(l *lead.Lead) crmLead {
	return crmLead{
		Company:       l.CompanyName,
		LastName:      l.LastName,
		FirstName:     l.FirstName,
		Email:         l.EmailAddress,
		Phone:         l.PhoneNumber,
		Website:       l.WebsiteURL,
		Street:        l.Street,
		City:          l.City,
		State:         l.State,
		ZipCode:       l.ZipCode,
		Country:       l.Country,
		Industry:      l.Industry,
		AnnualRevenue: l.AnnualRevenue,
		NoOfEmployees: l.NoOfEmployees,
		LeadSource:    l.SourcePlatform,
		LeadStatus:    l.Status,
		EmailOptOut:   l.EmailOptOut,
		Description:   l.Notes,
	}
}

// SyncLeads submits a batch of local leads to Zoho's bulk-create endpoint
// and reconciles the per-record results back onto the local records.
//
// Zoho returns results in submission order and echoes no client-supplied
// key, so array position is the only correlation back to local leads.
// The mapping below preserves batch order for that reason, and the
// response length is checked against the request before indexing.
func (c *Client) SyncLeads(ctx context.Context, leads []lead.Lead) (*SyncReport, error) {
	if len(leads) == 0 {
		return nil, ErrEmptyBatch
	}

	// Resolve a usable access token before anything is submitted
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	// Map leads into the CRM schema, preserving batch order
	records := make([]crmLead, len(leads))
	for i := range leads {
		records[i] = mapLead(&leads[i])
	}

	body, err := json.Marshal(map[string]any{"data": records})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sync payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/crm/v6/Leads", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create sync request: %w", err)
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &AuthError{Detail: string(respBody)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result bulkResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	// Positional correlation breaks silently if the provider ever
	// reorders or truncates results, so refuse to guess
	if len(result.Data) != len(leads) {
		return nil, &ProviderError{
			StatusCode: resp.StatusCode,
			Body:       fmt.Sprintf("expected %d results, got %d: %s", len(leads), len(result.Data), string(respBody)),
		}
	}

	report := &SyncReport{}

	// Partition per-record results, keeping original indices
	type success struct {
		index     int
		crmLeadID string
	}
	var successes []success

	for i, record := range result.Data {
		if record.Status == "success" {
			id, _ := record.Details["id"].(string)
			if id == "" {
				report.FailureCount++
				report.Failures = append(report.Failures, FailureDetail{
					Index:   i,
					LeadID:  leads[i].ID.String(),
					Code:    record.Code,
					Message: "success result carried no CRM id",
					Details: record.Details,
				})
				continue
			}
			report.SuccessCount++
			successes = append(successes, success{index: i, crmLeadID: id})
		} else {
			report.FailureCount++
			report.Failures = append(report.Failures, FailureDetail{
				Index:   i,
				LeadID:  leads[i].ID.String(),
				Code:    record.Code,
				Message: record.Message,
				Details: record.Details,
			})
		}
	}

	// Back-write CRM ids concurrently; each update is independent and
	// partial completion is reported, not rolled back
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, s := range successes {
		s := s
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := c.leads.SetCRMLeadID(ctx, leads[s.index].ID, s.crmLeadID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.DBUpdateFailureCount++
			} else {
				report.DBUpdateSuccessCount++
			}
		}()
	}
	wg.Wait()

	return report, nil
}
