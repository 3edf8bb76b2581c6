// Package github implements the external-identity linking flow against
// GitHub's authorization-code grant. GitHub is plain OAuth2 (no OIDC
// discovery), so the token exchange is a direct form POST against the
// documented token endpoint.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

//go:generate mockgen -source=github.go -destination=../mocks/github.go -package=mocks -mock_names Provider=MockGitHubProvider

type Profile struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type Provider interface {
	AuthCodeURL(clientID, state, scope string) string
	ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (string, error)
	FetchProfile(ctx context.Context, accessToken string) (*Profile, error)
}

const (
	apiBaseURL = "https://api.github.com"

	// exchangeTimeout bounds the token-exchange call independently of the
	// host's request timeout.
	exchangeTimeout = 10 * time.Second
)

type Client struct {
	httpClient *http.Client
	tokenURL   string
	apiURL     string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: exchangeTimeout},
		tokenURL:   githuboauth.Endpoint.TokenURL,
		apiURL:     apiBaseURL,
	}
}

// NewClientWithURLs is used by tests to point the client at a stub server.
func NewClientWithURLs(tokenURL, apiURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: exchangeTimeout},
		tokenURL:   tokenURL,
		apiURL:     apiURL,
	}
}

func (c *Client) AuthCodeURL(clientID, state, scope string) string {
	cfg := &oauth2.Config{
		ClientID: clientID,
		Endpoint: githuboauth.Endpoint,
		Scopes:   strings.Fields(scope),
	}

	return cfg.AuthCodeURL(state)
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ExchangeCode swaps an authorization code for an access token. GitHub's
// token endpoint answers form-encoded unless asked for JSON via Accept.
func (c *Client) ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (string, error) {
	form := url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"code":          {code},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	if token.Error != "" {
		return "", fmt.Errorf("token endpoint returned error: %s", token.Error)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	return token.AccessToken, nil
}

// FetchProfile probes the identity endpoint with the stored credential. Any
// failure is returned as an error for the caller to collapse into a
// "not connected" status.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity endpoint returned status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}

	return &profile, nil
}
