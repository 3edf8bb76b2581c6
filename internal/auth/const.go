package auth

type SessionKey string

var (
	SessionKeyUserData           SessionKey = "user_data"
	SessionKeyAuthenticated      SessionKey = "authenticated"
	SessionKeyTokenExpiry        SessionKey = "token_expiry"
	SessionKeyCreatedAt          SessionKey = "created_at"
	SessionKeyExpiresAt          SessionKey = "expires_at"
	SessionKeyRedirectAfterLogin SessionKey = "redirect_after_login"
	SessionKeyOauthState         SessionKey = "oauth_state"
	SessionKeyOauthNonce         SessionKey = "oauth_nonce"
	SessionKeyOauthCodeVerifier  SessionKey = "oauth_code_verifier"
)
