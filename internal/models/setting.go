package models

import "time"

// Setting names for third-party credentials stored per user. At most one row
// exists per (owner, name) pair; writes upsert.
const (
	SettingGitHubAccessToken  = "github_access_token"
	SettingGitHubClientID     = "github_client_id"
	SettingGitHubClientSecret = "github_client_secret"
	SettingResendAPIKey       = "resend_api_key"
)

type UserSetting struct {
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Value     string    `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DashboardSummary is the aggregate view cached per user.
type DashboardSummary struct {
	ProjectCount     int   `json:"project_count"`
	LiveProjectCount int   `json:"live_project_count"`
	IdeaCount        int   `json:"idea_count"`
	HabitCount       int   `json:"habit_count"`
	SnippetCount     int   `json:"snippet_count"`
	ServerCount      int   `json:"server_count"`
	ServersDown      int   `json:"servers_down"`
	AcquisitionCount int   `json:"acquisition_count"`
	TotalMRRCents    int64 `json:"total_mrr_cents"`
}
