package union

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var sortableColumns = map[string]bool{
	"created_at": true,
	"name":       true,
	"state":      true,
	"country":    true,
	"union_type": true,
}

// Store handles union and search-result persistence using GORM
type Store struct {
	db *gorm.DB
}

// NewStore creates a new union store with a MySQL connection
func NewStore(databaseURL string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	// Auto-migrate tables
	if err := db.AutoMigrate(&Union{}, &SearchResult{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// ListOptions filters and paginates union queries
type ListOptions struct {
	State     string
	Country   string
	UnionType string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// CreateUnions inserts a batch of unions, assigning IDs
func (s *Store) CreateUnions(ctx context.Context, unions []*Union) error {
	if len(unions) == 0 {
		return fmt.Errorf("no unions to create")
	}

	for _, u := range unions {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
	}

	result := s.db.WithContext(ctx).Create(unions)
	if result.Error != nil {
		return fmt.Errorf("failed to create unions: %w", result.Error)
	}

	return nil
}

// ListUnions returns a page of unions along with the total count
func (s *Store) ListUnions(ctx context.Context, opts ListOptions) ([]Union, int64, error) {
	query := s.db.WithContext(ctx).Model(&Union{})

	if opts.State != "" {
		query = query.Where("state = ?", opts.State)
	}
	if opts.Country != "" {
		query = query.Where("country = ?", opts.Country)
	}
	if opts.UnionType != "" {
		query = query.Where("union_type = ?", opts.UnionType)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR website LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count unions: %w", err)
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

	var unions []Union
	result := query.Order(sortBy + " " + order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&unions)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query unions: %w", result.Error)
	}

	return unions, total, nil
}

// GetUnion retrieves a union by ID
func (s *Store) GetUnion(ctx context.Context, id uuid.UUID) (*Union, error) {
	var u Union
	result := s.db.WithContext(ctx).First(&u, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("union not found")
		}
		return nil, fmt.Errorf("failed to get union: %w", result.Error)
	}

	return &u, nil
}

// DeleteUnion removes a union by ID
func (s *Store) DeleteUnion(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&Union{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete union: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("union '%s' not found", id)
	}

	return nil
}

// SaveSearchResult records an AI research run
func (s *Store) SaveSearchResult(ctx context.Context, sr *SearchResult) error {
	if sr.ID == uuid.Nil {
		sr.ID = uuid.New()
	}

	result := s.db.WithContext(ctx).Create(sr)
	if result.Error != nil {
		return fmt.Errorf("failed to save search result: %w", result.Error)
	}

	return nil
}

// CountUnions returns the total number of unions
func (s *Store) CountUnions(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Union{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unions: %w", err)
	}
	return count, nil
}

// CountUnionsSince returns the number of unions created after the given time
func (s *Store) CountUnionsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&Union{}).
		Where("created_at >= ?", since).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count unions: %w", result.Error)
	}
	return count, nil
}

// CountSearchResults returns the total number of recorded research runs
func (s *Store) CountSearchResults(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&SearchResult{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count search results: %w", err)
	}
	return count, nil
}
