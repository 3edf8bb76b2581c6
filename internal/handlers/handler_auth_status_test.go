package handlers_test

import (
	"founderdeck/internal/handlers"
	"founderdeck/internal/models"
	"founderdeck/internal/testutil"
	"net/http"
	"testing"
)

func TestAuthStatusAuthenticated(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/status")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder", Email: "founder@example.com"}
	tc.MockSession.EXPECT().IsUserAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(user, true)

	tc.CallHandler(handlers.AuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
}

func TestAuthStatusUnauthenticated(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsUserAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(handlers.AuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONBool(t, "authenticated", false)
}

func TestAuthStatusSessionWithoutUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsUserAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(nil, false)

	tc.CallHandler(handlers.AuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONBool(t, "authenticated", false)
}
