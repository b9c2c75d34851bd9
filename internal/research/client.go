package research

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/responses"
	"github.com/openai/openai-go/v2/shared"
	"github.com/unionscout/unionscout/pkg/utils"
)

// Client wraps the LLM provider's web-search capable responses API for
// union and lead research
type Client struct {
	api            openai.Client
	model          string
	reasoningModel string
	prompts        Prompts
}

// Source is a web citation attached to a research result
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Result is the text outcome of a research call plus its citations
type Result struct {
	Text    string
	Sources []Source
}

// NewClient creates a research client from configuration
func NewClient(cfg *utils.Config) (*Client, error) {
	apiKey := cfg.Get("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY not set in environment")
	}

	c := &Client{
		api:            openai.NewClient(option.WithAPIKey(apiKey)),
		model:          cfg.GetWithDefault("RESEARCH_MODEL", "gpt-4o-mini"),
		reasoningModel: cfg.GetWithDefault("RESEARCH_REASONING_MODEL", "o4-mini"),
		prompts:        DefaultPrompts(),
	}

	// Optional prompt overrides
	if path := cfg.Get("RESEARCH_PROMPTS_PATH"); path != "" {
		if err := c.prompts.LoadOverrides(path); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// userLocation hints the web search tool toward a region
type userLocation struct {
	Region  string
	Country string
}

// webSearchTool builds the hosted web search tool, optionally hinted
// toward a region
func webSearchTool(loc *userLocation) responses.ToolUnionParam {
	tool := responses.WebSearchPreviewToolParam{
		Type:              responses.WebSearchPreviewToolTypeWebSearchPreview,
		SearchContextSize: responses.WebSearchPreviewToolSearchContextSizeHigh,
	}
	if loc != nil {
		location := responses.WebSearchPreviewToolUserLocationParam{}
		if loc.Region != "" {
			location.Region = openai.String(loc.Region)
		}
		if loc.Country != "" {
			location.Country = openai.String(loc.Country)
		}
		tool.UserLocation = location
	}

	return responses.ToolUnionParam{OfWebSearchPreview: &tool}
}

// run performs one web-search backed model call and collects url
// citations from the output
func (c *Client) run(ctx context.Context, model, prompt string, loc *userLocation) (*Result, error) {
	resp, err := c.api.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(model),
		Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(prompt)},
		Tools: []responses.ToolUnionParam{webSearchTool(loc)},
	})
	if err != nil {
		return nil, fmt.Errorf("research call failed: %w", err)
	}

	result := &Result{Text: resp.OutputText()}

	// Collect url citations from output message annotations
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		msg := item.AsMessage()
		for _, content := range msg.Content {
			if content.Type != "output_text" {
				continue
			}
			text := content.AsOutputText()
			for _, annotation := range text.Annotations {
				if annotation.Type != "url_citation" {
					continue
				}
				result.Sources = append(result.Sources, Source{
					URL:   annotation.URL,
					Title: annotation.Title,
				})
			}
		}
	}

	return result, nil
}

// SearchParams identifies the location and kind of unions to search for
type SearchParams struct {
	Country   string
	State     string
	UnionType string
	Industry  string
}

// Query returns the human-readable search query recorded with results
func (p SearchParams) Query() string {
	query := fmt.Sprintf("labor unions in %s, %s", p.State, p.Country)
	if p.UnionType != "" {
		query += " " + p.UnionType
	}
	if p.Industry != "" {
		query += " " + p.Industry + " industry"
	}
	return query + " contact information phone email address"
}

// SearchUnions runs a location-scoped web search for labor unions
func (c *Client) SearchUnions(ctx context.Context, params SearchParams) (*Result, error) {
	if params.State == "" || params.Country == "" {
		return nil, errors.New("state and country are required")
	}

	prompt := fmt.Sprintf(c.prompts.SearchUnions, params.State, params.Country)
	if params.UnionType != "" {
		prompt += fmt.Sprintf("\n\nFocus on %s unions.", params.UnionType)
	}
	if params.Industry != "" {
		prompt += fmt.Sprintf("\nFocus on the %s industry.", params.Industry)
	}

	return c.run(ctx, c.model, prompt, &userLocation{Region: params.State})
}

// DeepSearchUnion runs a detailed search for a single union's contacts,
// leadership, and digital presence
func (c *Client) DeepSearchUnion(ctx context.Context, unionName string) (*Result, error) {
	if unionName == "" {
		return nil, errors.New("union name is required")
	}

	prompt := fmt.Sprintf(c.prompts.DeepSearch, unionName)

	return c.run(ctx, c.model, prompt, nil)
}

// ReportParams identifies the union a report should be generated for
type ReportParams struct {
	UnionName string
	State     string
	Country   string
	City      string
	ZipCode   string
	UnionType string
	Industry  string
}

// GenerateReport produces a markdown report about a union
func (c *Client) GenerateReport(ctx context.Context, params ReportParams) (*Result, error) {
	if params.UnionName == "" || params.State == "" || params.Country == "" {
		return nil, errors.New("union name, state, and country are required")
	}

	prompt := fmt.Sprintf("Generate a comprehensive report in Markdown format about the labor union %q", params.UnionName)
	if params.City != "" {
		prompt += fmt.Sprintf(" located in %s, %s, %s.", params.City, params.State, params.Country)
	} else {
		prompt += fmt.Sprintf(" located in %s, %s.", params.State, params.Country)
	}
	if params.ZipCode != "" {
		prompt += fmt.Sprintf(" Its zip code is %s.", params.ZipCode)
	}
	if params.UnionType != "" {
		prompt += fmt.Sprintf(" It is a %s type of union.", params.UnionType)
	}
	if params.Industry != "" {
		prompt += fmt.Sprintf(" It operates in the %s industry.", params.Industry)
	}
	prompt += "\n\n" + c.prompts.GenerateReport

	return c.run(ctx, c.reasoningModel, prompt, &userLocation{Region: params.State, Country: params.Country})
}
