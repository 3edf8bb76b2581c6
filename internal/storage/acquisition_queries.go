package storage

import (
	"context"
	"errors"
	"fmt"
	"founderdeck/internal/models"

	"github.com/jackc/pgx/v5"
)

func (p *DatabaseProvider) ListAcquisitionTargets(ctx context.Context, ownerID string) ([]*models.AcquisitionTarget, error) {
	query := `
		SELECT id, owner_id, name, url, asking_cents, revenue_cents, stage, notes, created_at, updated_at
		FROM acquisition_targets
		WHERE owner_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := p.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list acquisition targets: %w", err)
	}
	defer rows.Close()

	targets := make([]*models.AcquisitionTarget, 0)
	for rows.Next() {
		var target models.AcquisitionTarget
		if err := rows.Scan(
			&target.ID,
			&target.OwnerID,
			&target.Name,
			&target.URL,
			&target.AskingCents,
			&target.RevenueCents,
			&target.Stage,
			&target.Notes,
			&target.CreatedAt,
			&target.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan acquisition target: %w", err)
		}
		targets = append(targets, &target)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate acquisition targets: %w", err)
	}

	return targets, nil
}

func (p *DatabaseProvider) CreateAcquisitionTarget(ctx context.Context, target *models.AcquisitionTarget) (*models.AcquisitionTarget, error) {
	query := `
		INSERT INTO acquisition_targets (owner_id, name, url, asking_cents, revenue_cents, stage, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, name, url, asking_cents, revenue_cents, stage, notes, created_at, updated_at
	`

	var created models.AcquisitionTarget
	err := p.pool.QueryRow(ctx, query,
		target.OwnerID,
		target.Name,
		target.URL,
		target.AskingCents,
		target.RevenueCents,
		target.Stage,
		target.Notes,
	).Scan(
		&created.ID,
		&created.OwnerID,
		&created.Name,
		&created.URL,
		&created.AskingCents,
		&created.RevenueCents,
		&created.Stage,
		&created.Notes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create acquisition target: %w", err)
	}

	return &created, nil
}

func (p *DatabaseProvider) UpdateAcquisitionTarget(ctx context.Context, target *models.AcquisitionTarget) (*models.AcquisitionTarget, error) {
	query := `
		UPDATE acquisition_targets
		SET name = $3, url = $4, asking_cents = $5, revenue_cents = $6, stage = $7, notes = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, name, url, asking_cents, revenue_cents, stage, notes, created_at, updated_at
	`

	var updated models.AcquisitionTarget
	err := p.pool.QueryRow(ctx, query,
		target.ID,
		target.OwnerID,
		target.Name,
		target.URL,
		target.AskingCents,
		target.RevenueCents,
		target.Stage,
		target.Notes,
	).Scan(
		&updated.ID,
		&updated.OwnerID,
		&updated.Name,
		&updated.URL,
		&updated.AskingCents,
		&updated.RevenueCents,
		&updated.Stage,
		&updated.Notes,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update acquisition target: %w", err)
	}

	return &updated, nil
}

func (p *DatabaseProvider) DeleteAcquisitionTarget(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM acquisition_targets
		WHERE id = $1 AND owner_id = $2
	`

	result, err := p.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete acquisition target: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
