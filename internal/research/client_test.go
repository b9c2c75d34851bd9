package research

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/openai/openai-go/v2/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionscout/unionscout/pkg/utils"
)

func TestNewClient(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		_, err := NewClient(utils.NewConfig(map[string]string{}))
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		client, err := NewClient(utils.NewConfig(map[string]string{
			"OPENAI_API_KEY": "test-key",
		}))
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", client.model)
		assert.Equal(t, "o4-mini", client.reasoningModel)
		assert.Equal(t, DefaultPrompts(), client.prompts)
	})

	t.Run("configured models", func(t *testing.T) {
		client, err := NewClient(utils.NewConfig(map[string]string{
			"OPENAI_API_KEY":           "test-key",
			"RESEARCH_MODEL":           "gpt-4o",
			"RESEARCH_REASONING_MODEL": "o3",
		}))
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", client.model)
		assert.Equal(t, "o3", client.reasoningModel)
	})

	t.Run("prompt overrides from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompts.yaml")
		require.NoError(t, os.WriteFile(path, []byte("deep_search: Custom deep search for %s.\n"), 0644))

		client, err := NewClient(utils.NewConfig(map[string]string{
			"OPENAI_API_KEY":        "test-key",
			"RESEARCH_PROMPTS_PATH": path,
		}))
		require.NoError(t, err)
		assert.Equal(t, "Custom deep search for %s.", client.prompts.DeepSearch)
	})

	t.Run("unreadable prompt overrides", func(t *testing.T) {
		_, err := NewClient(utils.NewConfig(map[string]string{
			"OPENAI_API_KEY":        "test-key",
			"RESEARCH_PROMPTS_PATH": filepath.Join(t.TempDir(), "missing.yaml"),
		}))
		assert.Error(t, err)
	})
}

func TestWebSearchTool(t *testing.T) {
	t.Run("without location hint", func(t *testing.T) {
		tool := webSearchTool(nil)

		require.NotNil(t, tool.OfWebSearchPreview)
		assert.Equal(t, responses.WebSearchPreviewToolTypeWebSearchPreview, tool.OfWebSearchPreview.Type)
		assert.Equal(t, responses.WebSearchPreviewToolSearchContextSizeHigh, tool.OfWebSearchPreview.SearchContextSize)
		assert.False(t, tool.OfWebSearchPreview.UserLocation.Region.Valid())
		assert.False(t, tool.OfWebSearchPreview.UserLocation.Country.Valid())
	})

	t.Run("with location hint", func(t *testing.T) {
		tool := webSearchTool(&userLocation{Region: "Michigan", Country: "US"})

		require.NotNil(t, tool.OfWebSearchPreview)
		assert.Equal(t, "Michigan", tool.OfWebSearchPreview.UserLocation.Region.Value)
		assert.Equal(t, "US", tool.OfWebSearchPreview.UserLocation.Country.Value)
	})

	t.Run("region only", func(t *testing.T) {
		tool := webSearchTool(&userLocation{Region: "Michigan"})

		require.NotNil(t, tool.OfWebSearchPreview)
		assert.True(t, tool.OfWebSearchPreview.UserLocation.Region.Valid())
		assert.False(t, tool.OfWebSearchPreview.UserLocation.Country.Valid())
	})
}

func TestSearchParamsQuery(t *testing.T) {
	t.Run("location only", func(t *testing.T) {
		query := SearchParams{State: "Michigan", Country: "USA"}.Query()
		assert.Equal(t, "labor unions in Michigan, USA contact information phone email address", query)
	})

	t.Run("with type and industry", func(t *testing.T) {
		query := SearchParams{State: "Michigan", Country: "USA", UnionType: "trade", Industry: "construction"}.Query()
		assert.Equal(t, "labor unions in Michigan, USA trade construction industry contact information phone email address", query)
	})
}

func TestSearchValidation(t *testing.T) {
	client := &Client{prompts: DefaultPrompts()}

	t.Run("search requires state and country", func(t *testing.T) {
		_, err := client.SearchUnions(context.Background(), SearchParams{State: "Michigan"})
		assert.Error(t, err)

		_, err = client.SearchUnions(context.Background(), SearchParams{Country: "USA"})
		assert.Error(t, err)
	})

	t.Run("deep search requires a name", func(t *testing.T) {
		_, err := client.DeepSearchUnion(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("report requires name, state, and country", func(t *testing.T) {
		_, err := client.GenerateReport(context.Background(), ReportParams{UnionName: "IBEW Local 58"})
		assert.Error(t, err)
	})
}
