package models

import "time"

type ServerStatus string

const (
	ServerStatusUnknown ServerStatus = "unknown"
	ServerStatusUp      ServerStatus = "up"
	ServerStatusDown    ServerStatus = "down"
)

// TrackedServer is a host the founder watches. Status fields are written by
// the background health job, everything else by the owner.
type TrackedServer struct {
	ID            string       `json:"id"`
	OwnerID       string       `json:"owner_id"`
	Name          string       `json:"name"`
	CheckURL      string       `json:"check_url"`
	Status        ServerStatus `json:"status"`
	LatencyMillis int64        `json:"latency_ms"`
	LastCheckedAt *time.Time   `json:"last_checked_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
