package handlers_test

import (
	"encoding/json"
	"errors"
	"founderdeck/internal/handlers"
	"founderdeck/internal/models"
	"founderdeck/internal/testutil"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardDemoModeNeedsNoSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/dashboard").WithoutStorage()
	defer tc.Finish()

	// no session lookup, no cache, no storage
	tc.CallHandler(handlers.GETDashboardHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "demo", true)

	response := tc.GetJSONResponse(t)
	summary, ok := response["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(128500), summary["total_mrr_cents"])
	assert.Equal(t, float64(3), summary["project_count"])
}

func TestDashboardCacheMissComputesAndStores(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/dashboard")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectCacheGet("dashboard:user-1", nil, false)

	summary := &models.DashboardSummary{ProjectCount: 2, TotalMRRCents: 4200}
	tc.MockStorage.EXPECT().
		GetDashboardSummary(gomock.Any(), "user-1").
		Return(summary, nil)

	tc.ExpectCacheSet("dashboard:user-1")

	tc.CallHandler(handlers.GETDashboardHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "demo", false)

	response := tc.GetJSONResponse(t)
	got, ok := response["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(4200), got["total_mrr_cents"])
}

func TestDashboardCacheHitSkipsStorage(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/dashboard")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)

	cached, err := json.Marshal(&models.DashboardSummary{ProjectCount: 9, TotalMRRCents: 9900})
	require.NoError(t, err)
	tc.ExpectCacheGet("dashboard:user-1", cached, true)

	tc.CallHandler(handlers.GETDashboardHandler)

	tc.AssertStatus(t, http.StatusOK)
	response := tc.GetJSONResponse(t)
	got, ok := response["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(9900), got["total_mrr_cents"])
}

func TestDashboardUndecodableCacheEntryFallsThrough(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/dashboard")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectCacheGet("dashboard:user-1", []byte("not json"), true)

	tc.MockStorage.EXPECT().
		GetDashboardSummary(gomock.Any(), "user-1").
		Return(&models.DashboardSummary{ProjectCount: 1}, nil)

	tc.ExpectCacheSet("dashboard:user-1")

	tc.CallHandler(handlers.GETDashboardHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestDashboardStorageFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/dashboard")
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectCacheGet("dashboard:user-1", nil, false)

	tc.MockStorage.EXPECT().
		GetDashboardSummary(gomock.Any(), "user-1").
		Return(nil, errors.New("connection refused"))

	tc.CallHandler(handlers.GETDashboardHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
}

func TestDashboardUnauthenticated(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/dashboard")
	defer tc.Finish()

	tc.ExpectAuthenticatedUser(nil, false)

	tc.CallHandler(handlers.GETDashboardHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
}
