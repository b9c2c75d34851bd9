package research

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/unionscout/unionscout/internal/stores/lead"
)

// leadDraft mirrors the JSON shape the model is asked to produce for
// generated leads
type leadDraft struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	CompanyName   string   `json:"company_name"`
	EmailAddress  string   `json:"email_address"`
	PhoneNumber   string   `json:"phone_number"`
	JobTitle      string   `json:"job_title"`
	WebsiteURL    string   `json:"website_url"`
	Industry      string   `json:"industry"`
	Notes         string   `json:"notes"`
	Street        string   `json:"street"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	Country       string   `json:"country"`
	AnnualRevenue *float64 `json:"annual_revenue"`
	NoOfEmployees *int     `json:"no_of_employees"`
}

// LeadParams identifies the union to generate leads for
type LeadParams struct {
	UnionID   uuid.UUID
	UnionName string
	UnionType string
	Industry  string
	State     string
	Country   string
}

// GenerateLeads asks the model, with web search, for potential leads
// associated with a union, and parses its JSON output into local lead
// records (union id and defaults applied).
func (c *Client) GenerateLeads(ctx context.Context, params LeadParams) ([]*lead.Lead, []Source, error) {
	if params.UnionName == "" || params.State == "" || params.Country == "" || params.UnionID == uuid.Nil {
		return nil, nil, errors.New("union id, name, state, and country are required")
	}

	prompt := fmt.Sprintf("Generate a list of potential leads (individuals or businesses) associated with %q", params.UnionName)
	if params.UnionType != "" {
		prompt += fmt.Sprintf(", which is a %s type of union", params.UnionType)
	}
	if params.Industry != "" {
		prompt += fmt.Sprintf(" operating in the %s industry", params.Industry)
	}
	prompt += fmt.Sprintf(" based in %s, %s.\n\n", params.State, params.Country)
	prompt += c.prompts.GenerateLeads
	prompt += fmt.Sprintf("\nThe 'country' field should be %q for all generated leads.", params.Country)

	result, err := c.run(ctx, c.reasoningModel, prompt, &userLocation{Region: params.State})
	if err != nil {
		return nil, nil, err
	}

	raw, err := extractJSON(result.Text, '[', ']')
	if err != nil {
		return nil, result.Sources, fmt.Errorf("model did not return a valid array of leads: %w", err)
	}

	var drafts []leadDraft
	if err := json.Unmarshal([]byte(raw), &drafts); err != nil {
		return nil, result.Sources, fmt.Errorf("model did not return a valid array of leads: %w", err)
	}

	unionID := params.UnionID
	leads := make([]*lead.Lead, 0, len(drafts))
	for _, d := range drafts {
		l := &lead.Lead{
			FirstName:     d.FirstName,
			LastName:      d.LastName,
			CompanyName:   d.CompanyName,
			EmailAddress:  d.EmailAddress,
			PhoneNumber:   d.PhoneNumber,
			JobTitle:      d.JobTitle,
			WebsiteURL:    d.WebsiteURL,
			Industry:      d.Industry,
			Notes:         d.Notes,
			Street:        d.Street,
			City:          d.City,
			State:         d.State,
			ZipCode:       d.ZipCode,
			Country:       d.Country,
			AnnualRevenue: d.AnnualRevenue,
			NoOfEmployees: d.NoOfEmployees,
			UnionID:       &unionID,
		}
		l.ApplyDefaults()
		leads = append(leads, l)
	}

	return leads, result.Sources, nil
}

// UnionDraft is a structured union extracted from raw search output
type UnionDraft struct {
	Name           string `json:"name"`
	Website        string `json:"website"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	UnionType      string `json:"union_type"`
	LocalNumber    string `json:"local_number"`
	MembershipInfo string `json:"membership_info"`
}

// ParseUnions extracts structured union records from markdown search
// output. No web search is involved; the model only reshapes the text.
func (c *Client) ParseUnions(ctx context.Context, markdownText string) ([]UnionDraft, error) {
	if strings.TrimSpace(markdownText) == "" {
		return nil, errors.New("markdown text is required")
	}

	prompt := c.prompts.ParseUnions + "\n\nHere's the markdown text to parse:\n\n" + markdownText

	result, err := c.run(ctx, c.model, prompt, nil)
	if err != nil {
		return nil, err
	}

	raw, err := extractJSON(result.Text, '{', '}')
	if err != nil {
		return nil, fmt.Errorf("model did not return valid union data: %w", err)
	}

	var parsed struct {
		Unions []UnionDraft `json:"unions"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("model did not return valid union data: %w", err)
	}

	return parsed.Unions, nil
}

// extractJSON pulls the outermost JSON value delimited by the given
// brackets out of model output, tolerating surrounding prose and code
// fences
func extractJSON(text string, opening, closing byte) (string, error) {
	start := strings.IndexByte(text, opening)
	end := strings.LastIndexByte(text, closing)
	if start == -1 || end <= start {
		return "", fmt.Errorf("no JSON found in model output")
	}
	return text[start : end+1], nil
}
