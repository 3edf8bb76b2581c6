// Package settings resolves per-user settings with configuration fallback:
// a stored value for the owner wins, otherwise the value from the loaded
// configuration (including its environment overrides) applies.
package settings

import (
	"context"
	"founderdeck/internal/config"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
)

type Resolver struct {
	storage  storage.Provider
	fallback map[string]string
}

func NewResolver(cfg *config.Config, store storage.Provider) *Resolver {
	return &Resolver{
		storage: store,
		fallback: map[string]string{
			models.SettingGitHubClientID:     cfg.Integrations.GitHub.ClientID,
			models.SettingGitHubClientSecret: cfg.Integrations.GitHub.ClientSecret,
			models.SettingGitHubAccessToken:  cfg.Integrations.GitHub.AccessToken,
			models.SettingResendAPIKey:       cfg.Integrations.Resend.APIKey,
		},
	}
}

// Resolve returns the effective value of a named setting for an owner. It
// never returns an error: a storage failure during lookup is treated as
// "no stored value" and falls through to configuration. The second return
// reports whether any non-empty value was found at all.
func (r *Resolver) Resolve(ctx context.Context, ownerID, name string) (string, bool) {
	if r.storage != nil && ownerID != "" {
		value, err := r.storage.GetUserSetting(ctx, ownerID, name)
		if err == nil && value != "" {
			return value, true
		}
	}

	if value := r.fallback[name]; value != "" {
		return value, true
	}

	return "", false
}
