package auth

import (
	"founderdeck/internal/models"

	"github.com/coreos/go-oidc/v3/oidc"
)

func extractUserClaimsFromToken(idToken *oidc.IDToken) (*models.User, string, error) {
	var claims struct {
		Sub               string `json:"sub"`
		Iss               string `json:"iss"`
		PreferredUsername string `json:"preferred_username"`
		Name              string `json:"name"`
		Email             string `json:"email"`
		Nonce             string `json:"nonce"`
	}

	if err := idToken.Claims(&claims); err != nil {
		return nil, "", err
	}

	user := &models.User{
		Sub:         claims.Sub,
		Iss:         claims.Iss,
		Username:    claims.PreferredUsername,
		DisplayName: claims.Name,
		Email:       claims.Email,
	}

	return user, claims.Nonce, nil
}

// getPreferredValue returns the first non-empty string from the provided values
func getPreferredValue(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
