package handlers_test

import (
	"founderdeck/internal/github"
	"founderdeck/internal/handlers"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"founderdeck/internal/testutil"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGitHubConnectRedirectsToProvider(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/github/connect")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectUserSetting("user-1", models.SettingGitHubClientID, "client-123", nil)

	tc.MockGitHub.EXPECT().
		AuthCodeURL("client-123", gomock.Any(), "").
		Return("https://github.com/login/oauth/authorize?client_id=client-123")

	tc.CallHandler(handlers.GETGitHubConnectHandler)

	tc.AssertStatus(t, http.StatusFound)
	assert.Equal(t, "https://github.com/login/oauth/authorize?client_id=client-123", tc.Response.Header().Get("Location"))

	// exactly one state cookie, bound to the whole site
	cookies := tc.Response.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, github.StateCookieName, cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}

func TestGitHubConnectStateMatchesCookie(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/github/connect")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectUserSetting("user-1", models.SettingGitHubClientID, "client-123", nil)

	var capturedState string
	tc.MockGitHub.EXPECT().
		AuthCodeURL("client-123", gomock.Any(), "").
		DoAndReturn(func(clientID, state, scope string) string {
			capturedState = state
			return "https://github.com/login/oauth/authorize?state=" + url.QueryEscape(state)
		})

	tc.CallHandler(handlers.GETGitHubConnectHandler)

	cookies := tc.Response.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, capturedState, cookies[0].Value)
	assert.NotEmpty(t, capturedState)
}

// Initiating again while an earlier state cookie is still live replaces the
// cookie, so only the newest state can complete the handshake.
func TestGitHubReinitiationNewestStateWins(t *testing.T) {
	var states []string
	var cookies []*http.Cookie

	for i := 0; i < 2; i++ {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/github/connect")

		user := &models.User{ID: "user-1", Username: "founder"}
		tc.ExpectAuthenticatedUser(user, true)
		tc.ExpectUserSetting("user-1", models.SettingGitHubClientID, "client-123", nil)

		tc.MockGitHub.EXPECT().
			AuthCodeURL("client-123", gomock.Any(), "").
			DoAndReturn(func(clientID, state, scope string) string {
				states = append(states, state)
				return "https://github.com/login/oauth/authorize?state=" + url.QueryEscape(state)
			})

		tc.CallHandler(handlers.GETGitHubConnectHandler)

		written := tc.Response.Result().Cookies()
		require.Len(t, written, 1)
		cookies = append(cookies, written[0])
		tc.Finish()
	}

	require.Len(t, states, 2)
	assert.NotEqual(t, states[0], states[1])

	// the browser keeps only the second cookie, which holds the newest state
	assert.Equal(t, github.StateCookieName, cookies[1].Name)
	assert.Equal(t, states[1], cookies[1].Value)

	t.Run("superseded state is rejected", func(t *testing.T) {
		tc := callbackContext(t, "code-789", states[0], cookies[1].Value)
		defer tc.Finish()

		// fails anti-forgery before any session lookup or exchange
		tc.CallHandler(handlers.GETGitHubCallbackHandler)

		tc.AssertRedirect(t, http.StatusFound, "/settings?error=github_auth_failed")
	})

	t.Run("newest state completes the handshake", func(t *testing.T) {
		tc := callbackContext(t, "code-789", states[1], cookies[1].Value)
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
	})
}

func TestGitHubConnectWithoutClientID(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/github/connect")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectUserSetting("user-1", models.SettingGitHubClientID, "", storage.ErrSettingNotFound)

	tc.CallHandler(handlers.GETGitHubConnectHandler)

	tc.AssertRedirect(t, http.StatusFound, "/settings?error=github_not_configured")
	assert.Empty(t, tc.Response.Result().Cookies())
}

func TestGitHubConnectUnauthenticated(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/github/connect")
	defer tc.Finish()

	tc.ExpectAuthenticatedUser(nil, false)

	tc.CallHandler(handlers.GETGitHubConnectHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
}
