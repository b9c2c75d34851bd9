package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionscout/unionscout/internal/stores/lead"
)

// connectedStore returns a token store holding an unexpired credential
func connectedStore() *fakeTokenStore {
	return &fakeTokenStore{cred: &Credential{
		RefreshToken:         "stored-refresh",
		AccessToken:          "stored-access",
		AccessTokenExpiresAt: time.Now().Add(time.Hour),
	}}
}

func testLead(company, lastName string) lead.Lead {
	return lead.Lead{
		ID:          uuid.New(),
		CompanyName: company,
		LastName:    lastName,
	}
}

// successResult builds a Zoho bulk-create success record
func successResult(crmID string) string {
	return fmt.Sprintf(`{"code":"SUCCESS","status":"success","message":"record added","details":{"id":"%s"}}`, crmID)
}

const failureResult = `{"code":"MANDATORY_NOT_FOUND","status":"error","message":"required field not found","details":{"api_name":"Last_Name"}}`

func TestSyncLeads(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		client := NewClient(testConfig("https://accounts.example.com", "https://api.example.com"), connectedStore(), newFakeLeadWriter())

		_, err := client.SyncLeads(context.Background(), nil)
		assert.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("not connected", func(t *testing.T) {
		client := NewClient(testConfig("https://accounts.example.com", "https://api.example.com"), &fakeTokenStore{}, newFakeLeadWriter())

		_, err := client.SyncLeads(context.Background(), []lead.Lead{testLead("Local 100", "Smith")})
		assert.ErrorIs(t, err, ErrNotConnected)
	})

	t.Run("successful batch", func(t *testing.T) {
		var gotAuth string
		var gotPayload struct {
			Data []crmLead `json:"data"`
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/crm/v6/Leads", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"data":[%s,%s]}`, successResult("crm-1"), successResult("crm-2"))
		}))
		defer server.Close()

		writer := newFakeLeadWriter()
		client := NewClient(testConfig(server.URL, server.URL), connectedStore(), writer)

		leads := []lead.Lead{testLead("Local 100", "Smith"), testLead("Local 200", "Jones")}
		report, err := client.SyncLeads(context.Background(), leads)
		require.NoError(t, err)

		// The payload preserves batch order in the CRM schema
		assert.Equal(t, "Zoho-oauthtoken stored-access", gotAuth)
		require.Len(t, gotPayload.Data, 2)
		assert.Equal(t, "Local 100", gotPayload.Data[0].Company)
		assert.Equal(t, "Smith", gotPayload.Data[0].LastName)
		assert.Equal(t, "Local 200", gotPayload.Data[1].Company)
		assert.Equal(t, "Jones", gotPayload.Data[1].LastName)

		assert.Equal(t, 2, report.SuccessCount)
		assert.Equal(t, 0, report.FailureCount)
		assert.Equal(t, 2, report.DBUpdateSuccessCount)
		assert.Equal(t, 0, report.DBUpdateFailureCount)

		// CRM ids land on the matching local leads
		assert.Equal(t, "crm-1", writer.assigned[leads[0].ID])
		assert.Equal(t, "crm-2", writer.assigned[leads[1].ID])
	})

	t.Run("partial failure keeps indices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"data":[%s,%s,%s]}`, successResult("crm-1"), failureResult, successResult("crm-3"))
		}))
		defer server.Close()

		writer := newFakeLeadWriter()
		client := NewClient(testConfig(server.URL, server.URL), connectedStore(), writer)

		leads := []lead.Lead{
			testLead("Local 100", "Smith"),
			testLead("Local 200", ""),
			testLead("Local 300", "Jones"),
		}
		report, err := client.SyncLeads(context.Background(), leads)
		require.NoError(t, err)

		assert.Equal(t, 2, report.SuccessCount)
		assert.Equal(t, 1, report.FailureCount)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, 1, report.Failures[0].Index)
		assert.Equal(t, leads[1].ID.String(), report.Failures[0].LeadID)
		assert.Equal(t, "MANDATORY_NOT_FOUND", report.Failures[0].Code)

		// Only the successes are written back
		assert.Equal(t, "crm-1", writer.assigned[leads[0].ID])
		assert.Equal(t, "crm-3", writer.assigned[leads[2].ID])
		assert.NotContains(t, writer.assigned, leads[1].ID)
	})

	t.Run("success without a crm id counts as failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"data":[{"code":"SUCCESS","status":"success","message":"record added","details":{}}]}`)
		}))
		defer server.Close()

		writer := newFakeLeadWriter()
		client := NewClient(testConfig(server.URL, server.URL), connectedStore(), writer)

		report, err := client.SyncLeads(context.Background(), []lead.Lead{testLead("Local 100", "Smith")})
		require.NoError(t, err)

		assert.Equal(t, 0, report.SuccessCount)
		assert.Equal(t, 1, report.FailureCount)
		assert.Empty(t, writer.assigned)
	})

	t.Run("unauthorized response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"code":"INVALID_TOKEN"}`)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL, server.URL), connectedStore(), newFakeLeadWriter())

		_, err := client.SyncLeads(context.Background(), []lead.Lead{testLead("Local 100", "Smith")})
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Contains(t, authErr.Detail, "INVALID_TOKEN")
	})

	t.Run("provider failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, "upstream unavailable")
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL, server.URL), connectedStore(), newFakeLeadWriter())

		_, err := client.SyncLeads(context.Background(), []lead.Lead{testLead("Local 100", "Smith")})
		var providerErr *ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, http.StatusInternalServerError, providerErr.StatusCode)
	})

	t.Run("result count mismatch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"data":[%s]}`, successResult("crm-1"))
		}))
		defer server.Close()

		writer := newFakeLeadWriter()
		client := NewClient(testConfig(server.URL, server.URL), connectedStore(), writer)

		leads := []lead.Lead{testLead("Local 100", "Smith"), testLead("Local 200", "Jones")}
		_, err := client.SyncLeads(context.Background(), leads)

		// Positional correlation is impossible, so nothing is written back
		var providerErr *ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Empty(t, writer.assigned)
	})

	t.Run("back-write failures are reported separately", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"data":[%s,%s]}`, successResult("crm-1"), successResult("crm-2"))
		}))
		defer server.Close()

		leads := []lead.Lead{testLead("Local 100", "Smith"), testLead("Local 200", "Jones")}

		writer := newFakeLeadWriter()
		writer.failFor[leads[1].ID] = true

		client := NewClient(testConfig(server.URL, server.URL), connectedStore(), writer)

		report, err := client.SyncLeads(context.Background(), leads)
		require.NoError(t, err)

		// Both records made it into the CRM, one local update failed
		assert.Equal(t, 2, report.SuccessCount)
		assert.Equal(t, 0, report.FailureCount)
		assert.Equal(t, 1, report.DBUpdateSuccessCount)
		assert.Equal(t, 1, report.DBUpdateFailureCount)
	})
}

func TestMapLead(t *testing.T) {
	revenue := 1200000.0
	employees := 85

	l := lead.Lead{
		ID:             uuid.New(),
		FirstName:      "Amira",
		LastName:       "Okafor",
		CompanyName:    "United Steelworkers Local 12",
		EmailAddress:   "amira@example.org",
		PhoneNumber:    "+1-555-0100",
		WebsiteURL:     "https://example.org",
		Industry:       "Manufacturing",
		Notes:          "Met at the regional conference",
		SourcePlatform: "AI Generated",
		Status:         "New",
		EmailOptOut:    true,
		AnnualRevenue:  &revenue,
		NoOfEmployees:  &employees,
		Street:         "100 Main St",
		City:           "Pittsburgh",
		State:          "PA",
		ZipCode:        "15222",
		Country:        "USA",
	}

	mapped := mapLead(&l)

	assert.Equal(t, "United Steelworkers Local 12", mapped.Company)
	assert.Equal(t, "Okafor", mapped.LastName)
	assert.Equal(t, "Amira", mapped.FirstName)
	assert.Equal(t, "amira@example.org", mapped.Email)
	assert.Equal(t, "+1-555-0100", mapped.Phone)
	assert.Equal(t, "https://example.org", mapped.Website)
	assert.Equal(t, "Manufacturing", mapped.Industry)
	assert.Equal(t, "Met at the regional conference", mapped.Description)
	assert.Equal(t, "AI Generated", mapped.LeadSource)
	assert.Equal(t, "New", mapped.LeadStatus)
	assert.True(t, mapped.EmailOptOut)
	require.NotNil(t, mapped.AnnualRevenue)
	assert.Equal(t, revenue, *mapped.AnnualRevenue)
	require.NotNil(t, mapped.NoOfEmployees)
	assert.Equal(t, employees, *mapped.NoOfEmployees)
	assert.Equal(t, "100 Main St", mapped.Street)
	assert.Equal(t, "Pittsburgh", mapped.City)
	assert.Equal(t, "PA", mapped.State)
	assert.Equal(t, "15222", mapped.ZipCode)
	assert.Equal(t, "USA", mapped.Country)

	// Zoho's field names are part of the contract
	encoded, err := json.Marshal(mapped)
	require.NoError(t, err)
	for _, field := range []string{"Company", "Last_Name", "First_Name", "Email", "Phone", "Website", "Street", "City", "State", "Zip_Code", "Country", "Industry", "Annual_Revenue", "No_of_Employees", "Lead_Source", "Lead_Status", "Email_Opt_Out", "Description"} {
		assert.Contains(t, string(encoded), `"`+field+`"`)
	}
}
