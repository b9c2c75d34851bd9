package crmtoken

import (
	"fmt"

	"github.com/unionscout/unionscout/internal/zoho"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Store persists Zoho OAuth credentials using MySQL. It implements
// zoho.TokenStore.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new credential store with a MySQL connection
func NewStore(databaseURL string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	// Auto-migrate tables
	if err := db.AutoMigrate(&CredentialModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// scopedByUser narrows a query to one user scope. The empty user id is
// the global credential and matches only rows stored with it, so a
// global upsert can never touch a user-scoped row.
func (s *Store) scopedByUser(userID string) *gorm.DB {
	return s.db.Where("user_id = ?", userID)
}

// Get retrieves the credential for a user scope. A missing credential is
// a normal (nil, nil) return, not an error.
func (s *Store) Get(userID string) (*zoho.Credential, error) {
	var model CredentialModel
	result := s.scopedByUser(userID).Limit(1).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credential: %w", result.Error)
	}

	return toCredential(&model), nil
}

// Save upserts a credential within its user scope. An existing record is
// updated in place, preserving its primary key; UpdatedAt is stamped by
// GORM on every write.
func (s *Store) Save(cred *zoho.Credential) (*zoho.Credential, error) {
	if cred.RefreshToken == "" {
		return nil, fmt.Errorf("refresh token cannot be empty")
	}
	if cred.AccessToken == "" {
		return nil, fmt.Errorf("access token cannot be empty")
	}

	var existing CredentialModel
	result := s.scopedByUser(cred.UserID).Limit(1).First(&existing)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("failed to check existing credential: %w", result.Error)
		}

		// Create new record
		model := &CredentialModel{
			RefreshToken:         cred.RefreshToken,
			AccessToken:          cred.AccessToken,
			AccessTokenExpiresAt: cred.AccessTokenExpiresAt,
			UserID:               cred.UserID,
		}
		if err := s.db.Create(model).Error; err != nil {
			return nil, fmt.Errorf("failed to create credential: %w", err)
		}
		return toCredential(model), nil
	}

	// Update existing record in place
	updates := map[string]any{
		"refresh_token":           cred.RefreshToken,
		"access_token":            cred.AccessToken,
		"access_token_expires_at": cred.AccessTokenExpiresAt,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update credential: %w", err)
	}

	return toCredential(&existing), nil
}

// toCredential maps the database model to the zoho domain type
func toCredential(model *CredentialModel) *zoho.Credential {
	return &zoho.Credential{
		ID:                   model.ID,
		RefreshToken:         model.RefreshToken,
		AccessToken:          model.AccessToken,
		AccessTokenExpiresAt: model.AccessTokenExpiresAt,
		UserID:               model.UserID,
		UpdatedAt:            model.UpdatedAt,
	}
}
