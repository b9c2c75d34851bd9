package unions

import (
	"log"

	"github.com/unionscout/unionscout/internal/stores/union"
	"github.com/unionscout/unionscout/pkg/utils"
)

var unionStore *union.Store

// Init creates the union store for the module
func Init(cfg *utils.Config) {
	store, err := union.NewStore(utils.DatabaseURL(cfg))
	if err != nil {
		log.Fatalf("[UNIONS]: Failed to initialize union store: %v", err)
	}

	unionStore = store
}

// GetStore returns the module's union store
func GetStore() *union.Store {
	if unionStore == nil {
		log.Fatal("[UNIONS]: Union store is not initialized")
	}
	return unionStore
}
