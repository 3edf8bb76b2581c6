package handlers_test

import (
	"errors"
	"founderdeck/internal/handlers"
	"founderdeck/internal/mocks"
	"founderdeck/internal/models"
	"founderdeck/internal/testutil"
	"net/http"
	"testing"
)

func TestLoginWithoutProviderIsUnavailable(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/login")
	defer tc.Finish()

	// OIDCProvider stays nil: demo mode
	tc.CallHandler(handlers.GETLoginHandler)

	tc.AssertStatus(t, http.StatusServiceUnavailable)
}

func TestLoginAlreadyAuthenticated(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/login")
	defer tc.Finish()

	tc.AppContext.OIDCProvider = mocks.NewMockOIDCProvider(tc.MockController)
	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)

	tc.CallHandler(handlers.GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "ok")
}

func TestLoginStartsFlow(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/login?rd=/settings")
	defer tc.Finish()

	provider := mocks.NewMockOIDCProvider(tc.MockController)
	tc.AppContext.OIDCProvider = provider

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().SetRedirectAfterLogin(tc.AppContext, "/settings")
	provider.EXPECT().StartLogin(tc.AppContext).Return("https://auth.example.com/authorize?state=abc", nil)

	tc.CallHandler(handlers.GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "redirect_required")
	tc.AssertJSONString(t, "redirect_url", "https://auth.example.com/authorize?state=abc")
}

func TestLoginStartFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/login")
	defer tc.Finish()

	provider := mocks.NewMockOIDCProvider(tc.MockController)
	tc.AppContext.OIDCProvider = provider

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().SetRedirectAfterLogin(tc.AppContext, "/")
	provider.EXPECT().StartLogin(tc.AppContext).Return("", errors.New("discovery failed"))

	tc.CallHandler(handlers.GETLoginHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
}

func TestLogout(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/auth/logout")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(user, true)
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(nil)

	tc.CallHandler(handlers.LogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestLogoutFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/auth/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(nil, false)
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(errors.New("session backend down"))

	tc.CallHandler(handlers.LogoutHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
}
