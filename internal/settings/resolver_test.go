package settings_test

import (
	"context"
	"errors"
	"founderdeck/internal/config"
	"founderdeck/internal/mocks"
	"founderdeck/internal/models"
	"founderdeck/internal/settings"
	"founderdeck/internal/storage"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResolveStoredValueWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorageProvider(ctrl)

	cfg := &config.Config{}
	cfg.Integrations.GitHub.ClientID = "config-client-id"

	store.EXPECT().
		GetUserSetting(gomock.Any(), "owner-1", models.SettingGitHubClientID).
		Return("stored-client-id", nil)

	resolver := settings.NewResolver(cfg, store)

	value, found := resolver.Resolve(context.Background(), "owner-1", models.SettingGitHubClientID)
	assert.True(t, found)
	assert.Equal(t, "stored-client-id", value)
}

func TestResolveFallsBackToConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorageProvider(ctrl)

	cfg := &config.Config{}
	cfg.Integrations.Resend.APIKey = "config-api-key"

	store.EXPECT().
		GetUserSetting(gomock.Any(), "owner-1", models.SettingResendAPIKey).
		Return("", storage.ErrSettingNotFound)

	resolver := settings.NewResolver(cfg, store)

	value, found := resolver.Resolve(context.Background(), "owner-1", models.SettingResendAPIKey)
	assert.True(t, found)
	assert.Equal(t, "config-api-key", value)
}

func TestResolveStorageErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorageProvider(ctrl)

	cfg := &config.Config{}
	cfg.Integrations.GitHub.ClientSecret = "config-secret"

	store.EXPECT().
		GetUserSetting(gomock.Any(), "owner-1", models.SettingGitHubClientSecret).
		Return("", errors.New("connection refused"))

	resolver := settings.NewResolver(cfg, store)

	value, found := resolver.Resolve(context.Background(), "owner-1", models.SettingGitHubClientSecret)
	assert.True(t, found)
	assert.Equal(t, "config-secret", value)
}

func TestResolveNothingFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorageProvider(ctrl)

	store.EXPECT().
		GetUserSetting(gomock.Any(), "owner-1", models.SettingGitHubAccessToken).
		Return("", storage.ErrSettingNotFound)

	resolver := settings.NewResolver(&config.Config{}, store)

	value, found := resolver.Resolve(context.Background(), "owner-1", models.SettingGitHubAccessToken)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestResolveWithoutStorageUsesConfigOnly(t *testing.T) {
	cfg := &config.Config{}
	cfg.Integrations.GitHub.ClientID = "config-client-id"

	resolver := settings.NewResolver(cfg, nil)

	value, found := resolver.Resolve(context.Background(), "owner-1", models.SettingGitHubClientID)
	assert.True(t, found)
	assert.Equal(t, "config-client-id", value)
}

func TestResolveEmptyOwnerSkipsStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorageProvider(ctrl)

	cfg := &config.Config{}
	cfg.Integrations.GitHub.ClientID = "config-client-id"

	resolver := settings.NewResolver(cfg, store)

	value, found := resolver.Resolve(context.Background(), "", models.SettingGitHubClientID)
	assert.True(t, found)
	assert.Equal(t, "config-client-id", value)
}
