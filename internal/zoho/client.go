package zoho

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/unionscout/unionscout/pkg/utils"
	"golang.org/x/oauth2"
)

// Scopes requested during the OAuth handshake
const oauthScopes = "ZohoCRM.modules.leads.CREATE,ZohoCRM.modules.leads.READ,ZohoCRM.users.ALL"

// Access tokens within this margin of expiry are refreshed before use
const expiryMargin = 5 * time.Minute

// Client talks to the Zoho CRM API on behalf of a stored credential
type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string
	accountsURL  string
	apiURL       string

	tokens     TokenStore
	leads      LeadWriter
	httpClient *http.Client
}

// NewClient creates a Zoho client from configuration. The accounts and
// API base URLs default to the US data center and can be overridden for
// other regions (or tests).
func NewClient(cfg *utils.Config, tokens TokenStore, leads LeadWriter) *Client {
	return &Client{
		clientID:     cfg.Get("ZOHO_CLIENT_ID"),
		clientSecret: cfg.Get("ZOHO_CLIENT_SECRET"),
		redirectURI:  cfg.Get("ZOHO_REDIRECT_URI"),
		accountsURL:  cfg.GetWithDefault("ZOHO_ACCOUNTS_URL", "https://accounts.zoho.com"),
		apiURL:       cfg.GetWithDefault("ZOHO_API_URL", "https://www.zohoapis.com"),
		tokens:       tokens,
		leads:        leads,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// oauthConfig builds the oauth2 configuration for the provider. Zoho
// expects client credentials as request parameters, not basic auth.
func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		RedirectURL:  c.redirectURI,
		Scopes:       []string{oauthScopes},
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.accountsURL + "/oauth/v2/auth",
			TokenURL:  c.accountsURL + "/oauth/v2/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// httpContext routes oauth2's internal HTTP calls through our bounded client
func (c *Client) httpContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// AuthCodeURL constructs the provider consent URL for the OAuth
// handshake. access_type=offline guarantees a refresh token is issued.
func (c *Client) AuthCodeURL() (string, error) {
	if c.clientID == "" {
		return "", &ConfigError{Setting: "ZOHO_CLIENT_ID"}
	}
	if c.redirectURI == "" {
		return "", &ConfigError{Setting: "ZOHO_REDIRECT_URI"}
	}

	return c.oauthConfig().AuthCodeURL("", oauth2.AccessTypeOffline), nil
}

// ExchangeCode trades an authorization code for the initial token pair
// and persists it. Used once per account connection.
func (c *Client) ExchangeCode(ctx context.Context, code string) error {
	if err := c.checkCredentials(); err != nil {
		return err
	}
	if c.redirectURI == "" {
		return &ConfigError{Setting: "ZOHO_REDIRECT_URI"}
	}

	tok, err := c.oauthConfig().Exchange(c.httpContext(ctx), code)
	if err != nil {
		return asProviderError(err)
	}

	cred := &Credential{
		RefreshToken:         tok.RefreshToken,
		AccessToken:          tok.AccessToken,
		AccessTokenExpiresAt: tok.Expiry,
	}
	if _, err := c.tokens.Save(cred); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return nil
}

// refreshAccessToken exchanges the stored refresh token for a new access
// token, persists the updated credential, and returns the new token.
func (c *Client) refreshAccessToken(ctx context.Context, cred *Credential) (string, error) {
	if err := c.checkCredentials(); err != nil {
		return "", err
	}

	source := c.oauthConfig().TokenSource(c.httpContext(ctx), &oauth2.Token{
		RefreshToken: cred.RefreshToken,
	})

	tok, err := source.Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			// The provider rejected the refresh token: the account
			// has to be reconnected, retrying is pointless
			return "", &AuthError{Detail: string(retrieveErr.Body)}
		}
		return "", fmt.Errorf("token refresh failed: %w", err)
	}

	cred.AccessToken = tok.AccessToken
	cred.AccessTokenExpiresAt = tok.Expiry
	// Zoho has not been observed to rotate refresh tokens, but persist
	// a new one if the provider ever sends it
	if tok.RefreshToken != "" {
		cred.RefreshToken = tok.RefreshToken
	}

	if _, err := c.tokens.Save(cred); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return tok.AccessToken, nil
}

// accessToken resolves a usable access token for an API call, refreshing
// first when the stored token is within the expiry margin.
//
// Two requests that detect expiry at the same time will both refresh and
// the last save wins. Refreshes are idempotent on the provider side, so
// this race is accepted rather than locked around.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	cred, err := c.tokens.Get("")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if cred == nil {
		return "", ErrNotConnected
	}

	if time.Now().After(cred.AccessTokenExpiresAt.Add(-expiryMargin)) {
		return c.refreshAccessToken(ctx, cred)
	}

	return cred.AccessToken, nil
}

// ConnectionStatus returns the stored credential, if any, for status
// reporting. Token values must not be exposed by callers.
func (c *Client) ConnectionStatus() (*Credential, error) {
	cred, err := c.tokens.Get("")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return cred, nil
}

// checkCredentials verifies the client id and secret are configured
func (c *Client) checkCredentials() error {
	if c.clientID == "" {
		return &ConfigError{Setting: "ZOHO_CLIENT_ID"}
	}
	if c.clientSecret == "" {
		return &ConfigError{Setting: "ZOHO_CLIENT_SECRET"}
	}
	return nil
}

// asProviderError converts oauth2 retrieval failures into the error taxonomy
func asProviderError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return &ProviderError{
			StatusCode: retrieveErr.Response.StatusCode,
			Body:       string(retrieveErr.Body),
		}
	}
	return fmt.Errorf("token exchange failed: %w", err)
}
