package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/unionscout/unionscout/internal/stores/crmtoken"
	"github.com/unionscout/unionscout/internal/stores/lead"
	"github.com/unionscout/unionscout/internal/stores/union"
	"github.com/unionscout/unionscout/internal/zoho"
	"github.com/unionscout/unionscout/pkg/sdk"
	"github.com/unionscout/unionscout/pkg/utils"
)

// Service computes dashboard statistics and keeps a cached snapshot
// refreshed on a cron schedule
type Service struct {
	unions *union.Store
	leads  *lead.Store
	crm    *zoho.Client

	mu     sync.RWMutex
	cached *sdk.DashboardStats

	cron *cron.Cron
}

var statsService *Service

// Init creates the dashboard service and starts the refresh schedule
func Init(cfg *utils.Config) {
	databaseURL := utils.DatabaseURL(cfg)

	unionStore, err := union.NewStore(databaseURL)
	if err != nil {
		log.Fatalf("[DASHBOARD]: Failed to initialize union store: %v", err)
	}

	leadStore, err := lead.NewStore(databaseURL)
	if err != nil {
		log.Fatalf("[DASHBOARD]: Failed to initialize lead store: %v", err)
	}

	tokenStore, err := crmtoken.NewStore(databaseURL)
	if err != nil {
		log.Fatalf("[DASHBOARD]: Failed to initialize credential store: %v", err)
	}

	statsService = &Service{
		unions: unionStore,
		leads:  leadStore,
		crm:    zoho.NewClient(cfg, tokenStore, leadStore),
		cron:   cron.New(),
	}

	// Refresh the cached snapshot on a schedule
	schedule := cfg.GetWithDefault("DASHBOARD_REFRESH_CRON", "*/5 * * * *")
	if _, err := statsService.cron.AddFunc(schedule, statsService.refresh); err != nil {
		log.Fatalf("[DASHBOARD]: Invalid refresh schedule %q: %v", schedule, err)
	}
	statsService.cron.Start()
}

// GetService returns the dashboard service instance
func GetService() *Service {
	if statsService == nil {
		log.Fatal("[DASHBOARD]: Dashboard service is not initialized")
	}
	return statsService
}

// Stats returns the cached snapshot, computing one on demand when cold
func (s *Service) Stats(ctx context.Context) (*sdk.DashboardStats, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}

	return s.compute(ctx)
}

// refresh recomputes the snapshot for the cron schedule
func (s *Service) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if _, err := s.compute(ctx); err != nil {
		log.Printf("[DASHBOARD]: Failed to refresh stats: %v", err)
	}
}

// compute gathers local counts and best-effort CRM totals, then caches
// the snapshot
func (s *Service) compute(ctx context.Context) (*sdk.DashboardStats, error) {
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	totalUnions, err := s.unions.CountUnions(ctx)
	if err != nil {
		return nil, err
	}
	totalLeads, err := s.leads.CountLeads(ctx)
	if err != nil {
		return nil, err
	}
	syncedLeads, err := s.leads.CountSynced(ctx)
	if err != nil {
		return nil, err
	}
	totalSearches, err := s.unions.CountSearchResults(ctx)
	if err != nil {
		return nil, err
	}
	recentUnions, err := s.unions.CountUnionsSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}
	recentLeads, err := s.leads.CountLeadsSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}

	stats := &sdk.DashboardStats{
		TotalUnions:   totalUnions,
		TotalLeads:    totalLeads,
		SyncedLeads:   syncedLeads,
		TotalSearches: totalSearches,
		RecentUnions:  recentUnions,
		RecentLeads:   recentLeads,
		LastUpdated:   time.Now().Format(time.RFC3339),
	}
	if totalUnions > 0 {
		stats.UnionsGrowth = int(recentUnions * 100 / totalUnions)
	}
	if totalLeads > 0 {
		stats.LeadsGrowth = int(recentLeads * 100 / totalLeads)
		stats.SyncRate = int(syncedLeads * 100 / totalLeads)
	}

	// CRM stats are best effort: an unconnected or failing CRM never
	// breaks the dashboard
	if crmStats, err := s.crm.Stats(ctx); err == nil {
		stats.CRM.Connected = true
		stats.CRM.TotalLeads = crmStats.TotalLeads
		stats.CRM.RecentLeads = crmStats.RecentLeads
	}

	s.mu.Lock()
	s.cached = stats
	s.mu.Unlock()

	return stats, nil
}
