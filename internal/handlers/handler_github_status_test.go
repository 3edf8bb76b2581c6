package handlers_test

import (
	"errors"
	"founderdeck/internal/github"
	"founderdeck/internal/handlers"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"founderdeck/internal/testutil"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGitHubStatusConnected(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/github/status")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectUserSetting("user-1", models.SettingGitHubAccessToken, "gho_token", nil)

	tc.MockGitHub.EXPECT().
		FetchProfile(gomock.Any(), "gho_token").
		Return(&github.Profile{Login: "octocat", Name: "The Octocat", AvatarURL: "https://avatars.example.com/octocat"}, nil)

	tc.CallHandler(handlers.GETGitHubStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "connected", true)
	tc.AssertJSONString(t, "login", "octocat")
	tc.AssertJSONString(t, "avatar_url", "https://avatars.example.com/octocat")

	// the raw token never appears in the response
	assert.NotContains(t, tc.Response.Body.String(), "gho_token")
}

func TestGitHubStatusNoToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/github/status")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectUserSetting("user-1", models.SettingGitHubAccessToken, "", storage.ErrSettingNotFound)

	tc.CallHandler(handlers.GETGitHubStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "connected", false)
}

func TestGitHubStatusRevokedTokenCollapsesToDisconnected(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/github/status")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectUserSetting("user-1", models.SettingGitHubAccessToken, "revoked", nil)

	tc.MockGitHub.EXPECT().
		FetchProfile(gomock.Any(), "revoked").
		Return(nil, errors.New("identity endpoint returned status 401"))

	tc.CallHandler(handlers.GETGitHubStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "connected", false)
}

func TestGitHubDisconnect(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/github/disconnect")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)

	tc.MockStorage.EXPECT().
		DeleteUserSetting(gomock.Any(), "user-1", models.SettingGitHubAccessToken).
		Return(nil)

	tc.CallHandler(handlers.POSTGitHubDisconnectHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "disconnected")
}

func TestGitHubDisconnectWhenNotLinked(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/github/disconnect")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)

	// deleting a missing row is not an error
	tc.MockStorage.EXPECT().
		DeleteUserSetting(gomock.Any(), "user-1", models.SettingGitHubAccessToken).
		Return(nil)

	tc.CallHandler(handlers.POSTGitHubDisconnectHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "disconnected")
}

func TestGitHubDisconnectStorageFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/github/disconnect")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)

	tc.MockStorage.EXPECT().
		DeleteUserSetting(gomock.Any(), "user-1", models.SettingGitHubAccessToken).
		Return(errors.New("connection refused"))

	tc.CallHandler(handlers.POSTGitHubDisconnectHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
}
