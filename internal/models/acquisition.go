package models

import "time"

type AcquisitionStage string

const (
	AcquisitionStageWatching    AcquisitionStage = "watching"
	AcquisitionStageContacted   AcquisitionStage = "contacted"
	AcquisitionStageNegotiating AcquisitionStage = "negotiating"
	AcquisitionStageClosed      AcquisitionStage = "closed"
	AcquisitionStagePassed      AcquisitionStage = "passed"
)

type AcquisitionTarget struct {
	ID           string           `json:"id"`
	OwnerID      string           `json:"owner_id"`
	Name         string           `json:"name"`
	URL          string           `json:"url,omitempty"`
	AskingCents  int64            `json:"asking_cents"`
	RevenueCents int64            `json:"revenue_cents"`
	Stage        AcquisitionStage `json:"stage"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
