package leads

import (
	"log"

	"github.com/unionscout/unionscout/internal/stores/lead"
	"github.com/unionscout/unionscout/pkg/utils"
)

var leadStore *lead.Store

// Init creates the lead store for the module
func Init(cfg *utils.Config) {
	store, err := lead.NewStore(utils.DatabaseURL(cfg))
	if err != nil {
		log.Fatalf("[LEADS]: Failed to initialize lead store: %v", err)
	}

	leadStore = store
}

// GetStore returns the module's lead store
func GetStore() *lead.Store {
	if leadStore == nil {
		log.Fatal("[LEADS]: Lead store is not initialized")
	}
	return leadStore
}
