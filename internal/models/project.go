package models

import "time"

type ProjectStatus string

const (
	ProjectStatusIdea     ProjectStatus = "idea"
	ProjectStatusBuilding ProjectStatus = "building"
	ProjectStatusLive     ProjectStatus = "live"
	ProjectStatusArchived ProjectStatus = "archived"
)

type Project struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"owner_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	URL         string        `json:"url,omitempty"`
	RepoURL     string        `json:"repo_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
