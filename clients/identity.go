// File: clients/identity.go
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hopehealth/models"
)

// ErrInvalidGrant is returned when the identity provider rejects the
// credentials or the refresh token ("invalid_grant").
var ErrInvalidGrant = errors.New("identity provider rejected the grant")

// IdentityAPI exchanges credentials and refresh tokens for token pairs
// against the identity provider's token endpoint.
type IdentityAPI interface {
	PasswordGrant(ctx context.Context, username, password string) (*models.TokenPair, error)
	RefreshGrant(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// DefaultIdentityClient implements IdentityAPI against a Keycloak-style
// OpenID Connect token endpoint.
type DefaultIdentityClient struct {
	TokenURL   string
	ClientID   string
	httpClient *http.Client
}

// NewIdentityClient returns an IdentityAPI for the given token endpoint.
func NewIdentityClient(tokenURL, clientID string) *DefaultIdentityClient {
	return &DefaultIdentityClient{
		TokenURL: tokenURL,
		ClientID: clientID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// PasswordGrant exchanges a username/password for a token pair.
func (c *DefaultIdentityClient) PasswordGrant(ctx context.Context, username, password string) (*models.TokenPair, error) {
	form := url.Values{
		"grant_type": {"password"},
		"client_id":  {c.ClientID},
		"username":   {username},
		"password":   {password},
	}
	return c.exchange(ctx, form)
}

// RefreshGrant exchanges a refresh token for a fresh token pair.
func (c *DefaultIdentityClient) RefreshGrant(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {c.ClientID},
		"refresh_token": {refreshToken},
	}
	return c.exchange(ctx, form)
}

type tokenEndpointError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func (c *DefaultIdentityClient) exchange(ctx context.Context, form url.Values) (*models.TokenPair, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var tokenErr tokenEndpointError
		if json.Unmarshal(payload, &tokenErr) == nil && tokenErr.Error == "invalid_grant" {
			return nil, ErrInvalidGrant
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Path: "/token", Message: tokenErr.ErrorDescription}
	}

	var pair models.TokenPair
	if err := json.Unmarshal(payload, &pair); err != nil {
		return nil, fmt.Errorf("malformed token response: %w", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return nil, errors.New("token response missing access or refresh token")
	}
	return &pair, nil
}
