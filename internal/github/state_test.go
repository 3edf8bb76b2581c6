package github

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateIsUniqueAndURLSafe(t *testing.T) {
	first := NewState()
	second := NewState()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "+")
	assert.NotContains(t, first, "/")
	assert.NotContains(t, first, "=")
}

func TestSetStateCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	SetStateCookie(rr, "some-state", true)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, StateCookieName, cookie.Name)
	assert.Equal(t, "some-state", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestConsumeStateCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/github/callback", nil)
	req.AddCookie(&http.Cookie{Name: StateCookieName, Value: "stored-state"})
	rr := httptest.NewRecorder()

	state, ok := ConsumeStateCookie(rr, req)
	require.True(t, ok)
	assert.Equal(t, "stored-state", state)

	// the cookie is expired in the same response
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, StateCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestConsumeStateCookieMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/github/callback", nil)
	rr := httptest.NewRecorder()

	state, ok := ConsumeStateCookie(rr, req)
	assert.False(t, ok)
	assert.Empty(t, state)
	assert.Empty(t, rr.Result().Cookies())
}
