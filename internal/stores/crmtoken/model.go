package crmtoken

import (
	"time"
)

// CredentialModel represents the database model for stored Zoho OAuth
// credentials. One row exists per user scope; user_id is empty for the
// single global credential.
type CredentialModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	RefreshToken         string    `json:"refresh_token" gorm:"column:refresh_token;not null;size:500"`
	AccessToken          string    `json:"access_token" gorm:"column:access_token;not null;size:500"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at" gorm:"column:access_token_expires_at;not null"`
	UserID               string    `json:"user_id" gorm:"column:user_id;size:255;index"`
}

// TableName sets the table name for GORM
func (CredentialModel) TableName() string {
	return "zoho_tokens"
}
