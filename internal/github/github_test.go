package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthCodeURL(t *testing.T) {
	client := NewClient()

	raw := client.AuthCodeURL("client-123", "state-abc", "repo read:user")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "github.com", parsed.Host)
	query := parsed.Query()
	assert.Equal(t, "client-123", query.Get("client_id"))
	assert.Equal(t, "state-abc", query.Get("state"))
	assert.Equal(t, "repo read:user", query.Get("scope"))
}

func TestExchangeCodeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client-123", r.PostFormValue("client_id"))
		assert.Equal(t, "secret-456", r.PostFormValue("client_secret"))
		assert.Equal(t, "code-789", r.PostFormValue("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_token","token_type":"bearer"}`))
	}))
	defer server.Close()

	client := NewClientWithURLs(server.URL, server.URL)

	token, err := client.ExchangeCode(context.Background(), "client-123", "secret-456", "code-789")
	require.NoError(t, err)
	assert.Equal(t, "gho_token", token)
}

func TestExchangeCodeProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"bad_verification_code","error_description":"The code passed is incorrect or expired."}`))
	}))
	defer server.Close()

	client := NewClientWithURLs(server.URL, server.URL)

	_, err := client.ExchangeCode(context.Background(), "client-123", "secret-456", "stale-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_verification_code")
}

func TestExchangeCodeNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClientWithURLs(server.URL, server.URL)

	_, err := client.ExchangeCode(context.Background(), "client-123", "secret-456", "code-789")
	assert.Error(t, err)
}

func TestExchangeCodeEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClientWithURLs(server.URL, server.URL)

	_, err := client.ExchangeCode(context.Background(), "client-123", "secret-456", "code-789")
	assert.Error(t, err)
}

func TestFetchProfileSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer gho_token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"octocat","name":"The Octocat","avatar_url":"https://avatars.example.com/octocat"}`))
	}))
	defer server.Close()

	client := NewClientWithURLs(server.URL, server.URL)

	profile, err := client.FetchProfile(context.Background(), "gho_token")
	require.NoError(t, err)
	assert.Equal(t, "octocat", profile.Login)
	assert.Equal(t, "The Octocat", profile.Name)
	assert.Equal(t, "https://avatars.example.com/octocat", profile.AvatarURL)
}

func TestFetchProfileRevokedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithURLs(server.URL, server.URL)

	_, err := client.FetchProfile(context.Background(), "revoked")
	assert.Error(t, err)
}
