package handlers

import (
	"founderdeck/internal/models"
)

type AuthStatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

type GitHubStatusResponse struct {
	Connected bool   `json:"connected"`
	Login     string `json:"login,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type DashboardResponse struct {
	Demo    bool                     `json:"demo"`
	Summary *models.DashboardSummary `json:"summary"`
}

type EmailSendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html,omitempty"`
	Text    string `json:"text,omitempty"`
}
