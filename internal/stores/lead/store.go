package lead

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Columns leads can be sorted by. Anything else falls back to created_at.
var sortableColumns = map[string]bool{
	"created_at":    true,
	"first_name":    true,
	"last_name":     true,
	"company_name":  true,
	"email_address": true,
	"status":        true,
}

// Store handles lead persistence using GORM
type Store struct {
	db *gorm.DB
}

// NewStore creates a new lead store with a MySQL connection
func NewStore(databaseURL string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	// Auto-migrate tables
	if err := db.AutoMigrate(&Lead{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// ListOptions filters and paginates lead queries
type ListOptions struct {
	UnionID   uuid.UUID
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// CreateLeads inserts a batch of leads, assigning IDs and defaults
func (s *Store) CreateLeads(ctx context.Context, leads []*Lead) error {
	if len(leads) == 0 {
		return fmt.Errorf("no leads to create")
	}

	for _, l := range leads {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		l.ApplyDefaults()
	}

	result := s.db.WithContext(ctx).Create(leads)
	if result.Error != nil {
		return fmt.Errorf("failed to create leads: %w", result.Error)
	}

	return nil
}

// ListLeads returns a page of leads for a union along with the total count
func (s *Store) ListLeads(ctx context.Context, opts ListOptions) ([]Lead, int64, error) {
	if opts.UnionID == uuid.Nil {
		return nil, 0, fmt.Errorf("union id cannot be empty")
	}

	query := s.db.WithContext(ctx).Model(&Lead{}).Where("union_id = ?", opts.UnionID)

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR company_name LIKE ? OR email_address LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	sortBy := opts.SortBy
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	order := "asc"
	if opts.SortOrder == "desc" {
		order = "desc"
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	var leads []Lead
	result := query.Order(sortBy + " " + order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&leads)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query leads: %w", result.Error)
	}

	return leads, total, nil
}

// GetLeadsByIDs fetches leads by primary id, preserving the order of the
// requested ids
func (s *Store) GetLeadsByIDs(ctx context.Context, ids []uuid.UUID) ([]Lead, error) {
	var found []Lead
	result := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&found)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query leads: %w", result.Error)
	}

	byID := make(map[uuid.UUID]Lead, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}

	leads := make([]Lead, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			leads = append(leads, l)
		}
	}

	return leads, nil
}

// ListUnsynced returns leads for a union that have no CRM id yet
func (s *Store) ListUnsynced(ctx context.Context, unionID uuid.UUID) ([]Lead, error) {
	var leads []Lead
	result := s.db.WithContext(ctx).
		Where("union_id = ? AND zoho_crm_lead_id IS NULL", unionID).
		Order("created_at").
		Find(&leads)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query unsynced leads: %w", result.Error)
	}

	return leads, nil
}

// SetCRMLeadID records the CRM-assigned id on a lead after a successful sync
func (s *Store) SetCRMLeadID(ctx context.Context, id uuid.UUID, crmLeadID string) error {
	if crmLeadID == "" {
		return fmt.Errorf("crm lead id cannot be empty")
	}

	result := s.db.WithContext(ctx).Model(&Lead{}).
		Where("id = ?", id).
		Update("zoho_crm_lead_id", crmLeadID)
	if result.Error != nil {
		return fmt.Errorf("failed to update lead: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("lead '%s' not found", id)
	}

	return nil
}

// CountLeads returns the total number of leads
func (s *Store) CountLeads(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Lead{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

// CountLeadsSince returns the number of leads created after the given time
func (s *Store) CountLeadsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&Lead{}).
		Where("created_at >= ?", since).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count leads: %w", result.Error)
	}
	return count, nil
}

// CountSynced returns the number of leads with a CRM id
func (s *Store) CountSynced(ctx context.Context) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&Lead{}).
		Where("zoho_crm_lead_id IS NOT NULL").
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count synced leads: %w", result.Error)
	}
	return count, nil
}
