package handlers_test

import (
	"errors"
	"founderdeck/internal/config"
	"founderdeck/internal/github"
	"founderdeck/internal/handlers"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"founderdeck/internal/testutil"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func callbackContext(t *testing.T, code, state, cookie string) *testutil.TestContext {
	t.Helper()

	url := "/api/github/callback"
	sep := "?"
	if code != "" {
		url += sep + "code=" + code
		sep = "&"
	}
	if state != "" {
		url += sep + "state=" + state
	}

	tc := testutil.NewTestContextWithURL(t, http.MethodGet, url)
	if cookie != "" {
		tc.WithCookie(github.StateCookieName, cookie)
	}

	return tc
}

func expectCredentials(tc *testutil.TestContext, ownerID, clientID, clientSecret string) {
	tc.ExpectUserSetting(ownerID, models.SettingGitHubClientID, clientID, nil)
	tc.ExpectUserSetting(ownerID, models.SettingGitHubClientSecret, clientSecret, nil)
}

func TestGitHubCallbackSuccess(t *testing.T) {
	tc := callbackContext(t, "code-789", "state-abc", "state-abc")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	expectCredentials(tc, "user-1", "client-123", "secret-456")

	tc.MockGitHub.EXPECT().
		ExchangeCode(gomock.Any(), "client-123", "secret-456", "code-789").
		Return("gho_token", nil)

	tc.MockStorage.EXPECT().
		UpsertUserSetting(gomock.Any(), "user-1", models.SettingGitHubAccessToken, "gho_token").
		Return(nil)

	tc.CallHandler(handlers.GETGitHubCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/?github=connected")
}

func TestGitHubCallbackAntiForgery(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		state  string
		cookie string
	}{
		{name: "missing code", state: "state-abc", cookie: "state-abc"},
		{name: "missing state", code: "code-789", cookie: "state-abc"},
		{name: "missing cookie", code: "code-789", state: "state-abc"},
		{name: "state mismatch", code: "code-789", state: "state-abc", cookie: "state-xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := callbackContext(t, tt.code, tt.state, tt.cookie)
			defer tc.Finish()

			// no session lookup, no credential resolution, no exchange
			tc.CallHandler(handlers.GETGitHubCallbackHandler)

			tc.AssertRedirect(t, http.StatusFound, "/settings?error=github_auth_failed")
		})
	}
}

func TestGitHubCallbackConsumesCookieOnMismatch(t *testing.T) {
	tc := callbackContext(t, "code-789", "state-abc", "state-xyz")
	defer tc.Finish()

	tc.CallHandler(handlers.GETGitHubCallbackHandler)

	cookies := tc.Response.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, github.StateCookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestGitHubCallbackWithoutCredentials(t *testing.T) {
	tc := callbackContext(t, "code-789", "state-abc", "state-abc")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectUserSetting("user-1", models.SettingGitHubClientID, "", storage.ErrSettingNotFound)
	tc.ExpectUserSetting("user-1", models.SettingGitHubClientSecret, "", storage.ErrSettingNotFound)

	tc.CallHandler(handlers.GETGitHubCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/settings?error=github_not_configured")
}

func TestGitHubCallbackExchangeFailure(t *testing.T) {
	tc := callbackContext(t, "stale-code", "state-abc", "state-abc")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	expectCredentials(tc, "user-1", "client-123", "secret-456")

	tc.MockGitHub.EXPECT().
		ExchangeCode(gomock.Any(), "client-123", "secret-456", "stale-code").
		Return("", errors.New("bad_verification_code"))

	tc.CallHandler(handlers.GETGitHubCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/settings?error=github_token_failed")
}

func TestGitHubCallbackExpiredSessionExchangesThenRedirects(t *testing.T) {
	tc := callbackContext(t, "code-789", "state-abc", "state-abc")
	defer tc.Finish()

	// credentials come from configuration when no owner is known
	cfg := &config.Config{Storage: &config.StorageConfig{Configured: true}}
	cfg.Integrations.GitHub.ClientID = "client-123"
	cfg.Integrations.GitHub.ClientSecret = "secret-456"
	tc.WithConfig(cfg)

	tc.ExpectAuthenticatedUser(nil, false)

	// the exchange still happens exactly once; the token is then discarded
	tc.MockGitHub.EXPECT().
		ExchangeCode(gomock.Any(), "client-123", "secret-456", "code-789").
		Return("gho_token", nil).
		Times(1)

	tc.CallHandler(handlers.GETGitHubCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/login")
}

func TestGitHubCallbackExpiredSessionWithoutCredentials(t *testing.T) {
	tc := callbackContext(t, "code-789", "state-abc", "state-abc")
	defer tc.Finish()

	tc.ExpectAuthenticatedUser(nil, false)

	// nothing resolvable and no exchange attempted
	tc.CallHandler(handlers.GETGitHubCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/settings?error=github_not_configured")
}

func TestGitHubCallbackStoreFailure(t *testing.T) {
	tc := callbackContext(t, "code-789", "state-abc", "state-abc")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	expectCredentials(tc, "user-1", "client-123", "secret-456")

	tc.MockGitHub.EXPECT().
		ExchangeCode(gomock.Any(), "client-123", "secret-456", "code-789").
		Return("gho_token", nil)

	tc.MockStorage.EXPECT().
		UpsertUserSetting(gomock.Any(), "user-1", models.SettingGitHubAccessToken, "gho_token").
		Return(errors.New("connection refused"))

	tc.CallHandler(handlers.GETGitHubCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/settings?error=github_token_failed")
}
