package zoho_module

import (
	"errors"
	"log"
	"net/http"

	"github.com/unionscout/unionscout/internal/stores/crmtoken"
	"github.com/unionscout/unionscout/internal/stores/lead"
	"github.com/unionscout/unionscout/internal/zoho"
	"github.com/unionscout/unionscout/pkg/utils"
)

var (
	zohoClient *zoho.Client
	leadStore  *lead.Store
)

// Init creates the Zoho client and its backing stores for the module
func Init(cfg *utils.Config) {
	databaseURL := utils.DatabaseURL(cfg)

	tokenStore, err := crmtoken.NewStore(databaseURL)
	if err != nil {
		log.Fatalf("[ZOHO]: Failed to initialize credential store: %v", err)
	}

	store, err := lead.NewStore(databaseURL)
	if err != nil {
		log.Fatalf("[ZOHO]: Failed to initialize lead store: %v", err)
	}

	leadStore = store
	zohoClient = zoho.NewClient(cfg, tokenStore, store)
}

// GetClient returns the module's Zoho client
func GetClient() *zoho.Client {
	if zohoClient == nil {
		log.Fatal("[ZOHO]: Zoho client is not initialized")
	}
	return zohoClient
}

// GetLeadStore returns the module's lead store
func GetLeadStore() *lead.Store {
	if leadStore == nil {
		log.Fatal("[ZOHO]: Lead store is not initialized")
	}
	return leadStore
}

// statusForError maps the Zoho error taxonomy onto HTTP status codes
func statusForError(err error) (int, string) {
	var configErr *zoho.ConfigError
	var authErr *zoho.AuthError
	var providerErr *zoho.ProviderError

	switch {
	case errors.Is(err, zoho.ErrEmptyBatch):
		return http.StatusBadRequest, "No leads provided for sync"
	case errors.Is(err, zoho.ErrNotConnected):
		return http.StatusUnauthorized, "Zoho not connected. Please initiate OAuth first"
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, "Zoho CRM authorization failed. Please re-connect to Zoho"
	case errors.As(err, &configErr):
		return http.StatusInternalServerError, configErr.Error()
	case errors.As(err, &providerErr):
		return http.StatusInternalServerError, "Zoho CRM request failed"
	case errors.Is(err, zoho.ErrStorage):
		return http.StatusInternalServerError, "Credential storage failure"
	default:
		return http.StatusInternalServerError, "Unexpected error talking to Zoho CRM"
	}
}
