package storage

import (
	"context"
	"errors"
	"fmt"
	"founderdeck/internal/models"

	"github.com/jackc/pgx/v5"
)

func (p *DatabaseProvider) ListRevenueSources(ctx context.Context, ownerID string) ([]*models.RevenueSource, error) {
	query := `
		SELECT id, owner_id, name, mrr_cents, currency, project_id, notes, created_at, updated_at
		FROM revenue_sources
		WHERE owner_id = $1
		ORDER BY mrr_cents DESC
	`

	rows, err := p.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenue sources: %w", err)
	}
	defer rows.Close()

	sources := make([]*models.RevenueSource, 0)
	for rows.Next() {
		var source models.RevenueSource
		if err := rows.Scan(
			&source.ID,
			&source.OwnerID,
			&source.Name,
			&source.MRRCents,
			&source.Currency,
			&source.ProjectID,
			&source.Notes,
			&source.CreatedAt,
			&source.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan revenue source: %w", err)
		}
		sources = append(sources, &source)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenue sources: %w", err)
	}

	return sources, nil
}

func (p *DatabaseProvider) CreateRevenueSource(ctx context.Context, source *models.RevenueSource) (*models.RevenueSource, error) {
	query := `
		INSERT INTO revenue_sources (owner_id, name, mrr_cents, currency, project_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, name, mrr_cents, currency, project_id, notes, created_at, updated_at
	`

	var created models.RevenueSource
	err := p.pool.QueryRow(ctx, query,
		source.OwnerID,
		source.Name,
		source.MRRCents,
		source.Currency,
		source.ProjectID,
		source.Notes,
	).Scan(
		&created.ID,
		&created.OwnerID,
		&created.Name,
		&created.MRRCents,
		&created.Currency,
		&created.ProjectID,
		&created.Notes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create revenue source: %w", err)
	}

	return &created, nil
}

func (p *DatabaseProvider) UpdateRevenueSource(ctx context.Context, source *models.RevenueSource) (*models.RevenueSource, error) {
	query := `
		UPDATE revenue_sources
		SET name = $3, mrr_cents = $4, currency = $5, project_id = $6, notes = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, name, mrr_cents, currency, project_id, notes, created_at, updated_at
	`

	var updated models.RevenueSource
	err := p.pool.QueryRow(ctx, query,
		source.ID,
		source.OwnerID,
		source.Name,
		source.MRRCents,
		source.Currency,
		source.ProjectID,
		source.Notes,
	).Scan(
		&updated.ID,
		&updated.OwnerID,
		&updated.Name,
		&updated.MRRCents,
		&updated.Currency,
		&updated.ProjectID,
		&updated.Notes,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update revenue source: %w", err)
	}

	return &updated, nil
}

func (p *DatabaseProvider) DeleteRevenueSource(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM revenue_sources
		WHERE id = $1 AND owner_id = $2
	`

	result, err := p.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete revenue source: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
