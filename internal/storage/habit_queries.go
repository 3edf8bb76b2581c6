package storage

import (
	"context"
	"errors"
	"fmt"
	"founderdeck/internal/models"

	"github.com/jackc/pgx/v5"
)

func (p *DatabaseProvider) ListHabits(ctx context.Context, ownerID string) ([]*models.Habit, error) {
	query := `
		SELECT id, owner_id, name, cadence, current_streak, best_streak, last_checked_at, created_at, updated_at
		FROM habits
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`

	rows, err := p.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	habits := make([]*models.Habit, 0)
	for rows.Next() {
		var habit models.Habit
		if err := rows.Scan(
			&habit.ID,
			&habit.OwnerID,
			&habit.Name,
			&habit.Cadence,
			&habit.CurrentStreak,
			&habit.BestStreak,
			&habit.LastCheckedAt,
			&habit.CreatedAt,
			&habit.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, &habit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return habits, nil
}

func (p *DatabaseProvider) CreateHabit(ctx context.Context, habit *models.Habit) (*models.Habit, error) {
	query := `
		INSERT INTO habits (owner_id, name, cadence)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, name, cadence, current_streak, best_streak, last_checked_at, created_at, updated_at
	`

	var created models.Habit
	err := p.pool.QueryRow(ctx, query,
		habit.OwnerID,
		habit.Name,
		habit.Cadence,
	).Scan(
		&created.ID,
		&created.OwnerID,
		&created.Name,
		&created.Cadence,
		&created.CurrentStreak,
		&created.BestStreak,
		&created.LastCheckedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &created, nil
}

func (p *DatabaseProvider) UpdateHabit(ctx context.Context, habit *models.Habit) (*models.Habit, error) {
	query := `
		UPDATE habits
		SET name = $3, cadence = $4, current_streak = $5, best_streak = $6, last_checked_at = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, name, cadence, current_streak, best_streak, last_checked_at, created_at, updated_at
	`

	var updated models.Habit
	err := p.pool.QueryRow(ctx, query,
		habit.ID,
		habit.OwnerID,
		habit.Name,
		habit.Cadence,
		habit.CurrentStreak,
		habit.BestStreak,
		habit.LastCheckedAt,
	).Scan(
		&updated.ID,
		&updated.OwnerID,
		&updated.Name,
		&updated.Cadence,
		&updated.CurrentStreak,
		&updated.BestStreak,
		&updated.LastCheckedAt,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &updated, nil
}

func (p *DatabaseProvider) DeleteHabit(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM habits
		WHERE id = $1 AND owner_id = $2
	`

	result, err := p.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
