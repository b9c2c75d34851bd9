package research_module

import (
	"log"

	"github.com/unionscout/unionscout/internal/research"
	"github.com/unionscout/unionscout/internal/stores/union"
	"github.com/unionscout/unionscout/pkg/utils"
)

var (
	researchClient *research.Client
	unionStore     *union.Store
)

// Init creates the research client and union store for the module
func Init(cfg *utils.Config) {
	client, err := research.NewClient(cfg)
	if err != nil {
		log.Fatalf("[RESEARCH]: Failed to initialize research client: %v", err)
	}

	store, err := union.NewStore(utils.DatabaseURL(cfg))
	if err != nil {
		log.Fatalf("[RESEARCH]: Failed to initialize union store: %v", err)
	}

	researchClient = client
	unionStore = store
}

// GetClient returns the module's research client
func GetClient() *research.Client {
	if researchClient == nil {
		log.Fatal("[RESEARCH]: Research client is not initialized")
	}
	return researchClient
}

// GetUnionStore returns the module's union store
func GetUnionStore() *union.Store {
	if unionStore == nil {
		log.Fatal("[RESEARCH]: Union store is not initialized")
	}
	return unionStore
}
