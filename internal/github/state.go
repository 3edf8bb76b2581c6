package github

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
)

const (
	// StateCookieName carries the anti-forgery state between the initiate
	// redirect and the provider callback.
	StateCookieName = "github_oauth_state"

	// stateCookieMaxAge bounds the handshake independently of how long the
	// user lingers on the provider's consent screen.
	stateCookieMaxAge = 600
)

// NewState returns a crypto-random single-use anti-forgery token.
func NewState() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)

	return base64.RawURLEncoding.EncodeToString(b)
}

// SetStateCookie stores the state for the callback. Re-initiating before an
// earlier cookie expires overwrites it; the newest state supersedes.
func SetStateCookie(w http.ResponseWriter, state string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     StateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   stateCookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ConsumeStateCookie reads the stored state and expires the cookie in the
// same call, so the token is single-use on every exit path whether or not
// the comparison succeeds.
func ConsumeStateCookie(w http.ResponseWriter, r *http.Request) (string, bool) {
	cookie, err := r.Cookie(StateCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     StateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return cookie.Value, true
}
