package zoho

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Credential is a stored OAuth token pair plus expiry, optionally scoped
// by user. At most one credential exists per user scope; an empty UserID
// is the single global credential.
type Credential struct {
	ID                   uint
	RefreshToken         string
	AccessToken          string
	AccessTokenExpiresAt time.Time
	UserID               string
	UpdatedAt            time.Time
}

// TokenStore persists OAuth credentials. Get returns (nil, nil) when no
// credential exists for the scope; errors are reserved for transport
// failures. Save upserts within the user scope, preserving the record
// identity on update, and stamps UpdatedAt.
type TokenStore interface {
	Get(userID string) (*Credential, error)
	Save(credential *Credential) (*Credential, error)
}

// LeadWriter records a CRM-assigned lead id on a local lead after a
// successful sync
type LeadWriter interface {
	SetCRMLeadID(ctx context.Context, id uuid.UUID, crmLeadID string) error
}
