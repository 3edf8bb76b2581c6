package storage

import (
	"context"
	"errors"
	"fmt"
	"founderdeck/internal/models"

	"github.com/jackc/pgx/v5"
)

func (p *DatabaseProvider) ListIdeas(ctx context.Context, ownerID string) ([]*models.Idea, error) {
	query := `
		SELECT id, owner_id, title, body, tags, starred, created_at, updated_at
		FROM ideas
		WHERE owner_id = $1
		ORDER BY starred DESC, updated_at DESC
	`

	rows, err := p.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer rows.Close()

	ideas := make([]*models.Idea, 0)
	for rows.Next() {
		var idea models.Idea
		if err := rows.Scan(
			&idea.ID,
			&idea.OwnerID,
			&idea.Title,
			&idea.Body,
			&idea.Tags,
			&idea.Starred,
			&idea.CreatedAt,
			&idea.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, &idea)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ideas: %w", err)
	}

	return ideas, nil
}

func (p *DatabaseProvider) CreateIdea(ctx context.Context, idea *models.Idea) (*models.Idea, error) {
	query := `
		INSERT INTO ideas (owner_id, title, body, tags, starred)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, title, body, tags, starred, created_at, updated_at
	`

	var created models.Idea
	err := p.pool.QueryRow(ctx, query,
		idea.OwnerID,
		idea.Title,
		idea.Body,
		idea.Tags,
		idea.Starred,
	).Scan(
		&created.ID,
		&created.OwnerID,
		&created.Title,
		&created.Body,
		&created.Tags,
		&created.Starred,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}

	return &created, nil
}

func (p *DatabaseProvider) UpdateIdea(ctx context.Context, idea *models.Idea) (*models.Idea, error) {
	query := `
		UPDATE ideas
		SET title = $3, body = $4, tags = $5, starred = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, body, tags, starred, created_at, updated_at
	`

	var updated models.Idea
	err := p.pool.QueryRow(ctx, query,
		idea.ID,
		idea.OwnerID,
		idea.Title,
		idea.Body,
		idea.Tags,
		idea.Starred,
	).Scan(
		&updated.ID,
		&updated.OwnerID,
		&updated.Title,
		&updated.Body,
		&updated.Tags,
		&updated.Starred,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}

	return &updated, nil
}

func (p *DatabaseProvider) DeleteIdea(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM ideas
		WHERE id = $1 AND owner_id = $2
	`

	result, err := p.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
