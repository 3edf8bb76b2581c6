package models

import "time"

// RevenueSource tracks a recurring income stream. Amounts are stored in cents
// to avoid floating point drift in monthly totals.
type RevenueSource struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	MRRCents  int64     `json:"mrr_cents"`
	Currency  string    `json:"currency"`
	ProjectID string    `json:"project_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
