package zoho

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	t.Run("aggregates lead statistics", func(t *testing.T) {
		now := time.Now()
		recent := now.AddDate(0, 0, -2).Format(time.RFC3339)
		lastMonth := now.AddDate(0, 0, -20).Format(time.RFC3339)
		old := now.AddDate(0, 0, -90).Format(time.RFC3339)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/crm/v6/Leads", r.URL.Path)
			assert.Equal(t, "Zoho-oauthtoken stored-access", r.Header.Get("Authorization"))
			assert.Equal(t, "id,Created_Time,Lead_Status", r.URL.Query().Get("fields"))

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{
				"data": [
					{"id": "1", "Created_Time": "%s", "Lead_Status": "New"},
					{"id": "2", "Created_Time": "%s", "Lead_Status": "Contacted"},
					{"id": "3", "Created_Time": "%s", "Lead_Status": "New"},
					{"id": "4", "Created_Time": "%s", "Lead_Status": ""}
				],
				"info": {"count": 4}
			}`, recent, lastMonth, old, recent)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL, server.URL), connectedStore(), newFakeLeadWriter())

		stats, err := client.Stats(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 4, stats.TotalLeads)
		assert.Equal(t, 3, stats.RecentLeads)
		assert.Equal(t, 2, stats.WeeklyLeads)
		assert.True(t, stats.Connected)
		assert.Equal(t, map[string]int{"New": 2, "Contacted": 1, "Unknown": 1}, stats.StatusBreakdown)
	})

	t.Run("total falls back to record count", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"data": [{"id": "1", "Lead_Status": "New"}, {"id": "2", "Lead_Status": "New"}]}`)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL, server.URL), connectedStore(), newFakeLeadWriter())

		stats, err := client.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalLeads)
	})

	t.Run("not connected", func(t *testing.T) {
		client := NewClient(testConfig("https://accounts.example.com", "https://api.example.com"), &fakeTokenStore{}, newFakeLeadWriter())

		_, err := client.Stats(context.Background())
		assert.ErrorIs(t, err, ErrNotConnected)
	})

	t.Run("unauthorized response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"code":"INVALID_TOKEN"}`)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL, server.URL), connectedStore(), newFakeLeadWriter())

		_, err := client.Stats(context.Background())
		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
	})
}
