package zoho

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected means no credential is on record; the OAuth
	// handshake has to be completed before any CRM call can be made
	ErrNotConnected = errors.New("zoho not connected, please initiate OAuth first")

	// ErrEmptyBatch means a sync was requested with no leads in it
	ErrEmptyBatch = errors.New("no leads provided for sync")

	// ErrStorage marks credential persistence transport failures, as
	// opposed to a credential simply not existing
	ErrStorage = errors.New("credential storage failure")
)

// ConfigError means a required application setting is missing. This is
// fatal for the calling flow and not retryable.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("zoho integration is not configured: %s is not set", e.Setting)
}

// AuthError means the provider rejected the access or refresh token.
// The stored credential is no longer usable and the account must be
// reconnected; retrying with the same token is pointless.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	if e.Detail == "" {
		return "zoho authorization failed, please re-connect"
	}
	return fmt.Sprintf("zoho authorization failed, please re-connect: %s", e.Detail)
}

// ProviderError is any other non-2xx response from the provider. The
// original payload is carried along for diagnostics.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("zoho request failed with status %d: %s", e.StatusCode, e.Body)
}
