package storage

import (
	"context"
	"fmt"
	"founderdeck/internal/models"
)

// GetDashboardSummary aggregates the owner's counts and MRR in one round trip.
func (p *DatabaseProvider) GetDashboardSummary(ctx context.Context, ownerID string) (*models.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects WHERE owner_id = $1),
			(SELECT COUNT(*) FROM projects WHERE owner_id = $1 AND status = 'live'),
			(SELECT COUNT(*) FROM ideas WHERE owner_id = $1),
			(SELECT COUNT(*) FROM habits WHERE owner_id = $1),
			(SELECT COUNT(*) FROM snippets WHERE owner_id = $1),
			(SELECT COUNT(*) FROM servers WHERE owner_id = $1),
			(SELECT COUNT(*) FROM servers WHERE owner_id = $1 AND status = 'down'),
			(SELECT COUNT(*) FROM acquisition_targets WHERE owner_id = $1),
			(SELECT COALESCE(SUM(mrr_cents), 0) FROM revenue_sources WHERE owner_id = $1)
	`

	var summary models.DashboardSummary
	err := p.pool.QueryRow(ctx, query, ownerID).Scan(
		&summary.ProjectCount,
		&summary.LiveProjectCount,
		&summary.IdeaCount,
		&summary.HabitCount,
		&summary.SnippetCount,
		&summary.ServerCount,
		&summary.ServersDown,
		&summary.AcquisitionCount,
		&summary.TotalMRRCents,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard summary: %w", err)
	}

	return &summary, nil
}
