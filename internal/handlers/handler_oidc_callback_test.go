package handlers_test

import (
	"errors"
	"founderdeck/internal/auth"
	"founderdeck/internal/handlers"
	"founderdeck/internal/mocks"
	"founderdeck/internal/models"
	"founderdeck/internal/testutil"
	"net/http"
	"testing"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/mock/gomock"
)

func TestCallbackWithoutProviderRedirects(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/callback")
	defer tc.Finish()

	tc.CallHandler(handlers.GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/login?error=auth_failed")
}

func TestCallbackSuccess(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/callback?code=abc&state=xyz")
	defer tc.Finish()

	provider := mocks.NewMockOIDCProvider(tc.MockController)
	tc.AppContext.OIDCProvider = provider

	claims := &models.User{Sub: "sub-1", Iss: "https://auth.example.com", Username: "founder", Email: "founder@example.com"}
	stored := &models.User{ID: "user-1", Sub: "sub-1", Iss: "https://auth.example.com", Username: "founder", Email: "founder@example.com"}
	idToken := &oidc.IDToken{}

	provider.EXPECT().HandleCallback(tc.AppContext).Return(idToken, claims, nil)
	tc.MockStorage.EXPECT().
		UpsertUser(gomock.Any(), "sub-1", "https://auth.example.com", "founder", "", "founder@example.com").
		Return(stored, nil)
	tc.MockSession.EXPECT().CreateSessionWithTokenExpiry(tc.AppContext, idToken, stored).Return(nil)
	tc.MockSession.EXPECT().GetRedirectAfterLogin(tc.AppContext).Return("/settings")

	tc.CallHandler(handlers.GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/settings")
}

func TestCallbackSuccessDefaultsToRoot(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/callback?code=abc&state=xyz")
	defer tc.Finish()
	tc.WithoutStorage()

	provider := mocks.NewMockOIDCProvider(tc.MockController)
	tc.AppContext.OIDCProvider = provider

	claims := &models.User{Sub: "sub-1", Username: "founder", Email: "founder@example.com"}
	idToken := &oidc.IDToken{}

	provider.EXPECT().HandleCallback(tc.AppContext).Return(idToken, claims, nil)
	tc.MockSession.EXPECT().CreateSessionWithTokenExpiry(tc.AppContext, idToken, claims).Return(nil)
	tc.MockSession.EXPECT().GetRedirectAfterLogin(tc.AppContext).Return("")

	tc.CallHandler(handlers.GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/")
}

func TestCallbackProviderErrorWithRedirect(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/callback?error=access_denied")
	defer tc.Finish()

	provider := mocks.NewMockOIDCProvider(tc.MockController)
	tc.AppContext.OIDCProvider = provider

	provider.EXPECT().
		HandleCallback(tc.AppContext).
		Return(nil, nil, &auth.OIDCError{RedirectURL: "/login?error=access_denied", Message: "access denied"})

	tc.CallHandler(handlers.GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/login?error=access_denied")
}

func TestCallbackSessionCreationFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/callback?code=abc&state=xyz")
	defer tc.Finish()
	tc.WithoutStorage()

	provider := mocks.NewMockOIDCProvider(tc.MockController)
	tc.AppContext.OIDCProvider = provider

	claims := &models.User{Sub: "sub-1", Username: "founder"}
	idToken := &oidc.IDToken{}

	provider.EXPECT().HandleCallback(tc.AppContext).Return(idToken, claims, nil)
	tc.MockSession.EXPECT().
		CreateSessionWithTokenExpiry(tc.AppContext, idToken, claims).
		Return(errors.New("token already expired"))

	tc.CallHandler(handlers.GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/login?error=auth_failed")
}
