package storage

import (
	"context"
	"errors"
	"fmt"
	"founderdeck/internal/models"

	"github.com/jackc/pgx/v5"
)

func (p *DatabaseProvider) ListSnippets(ctx context.Context, ownerID string) ([]*models.Snippet, error) {
	query := `
		SELECT id, owner_id, title, language, code, notes, created_at, updated_at
		FROM snippets
		WHERE owner_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := p.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snippets: %w", err)
	}
	defer rows.Close()

	snippets := make([]*models.Snippet, 0)
	for rows.Next() {
		var snippet models.Snippet
		if err := rows.Scan(
			&snippet.ID,
			&snippet.OwnerID,
			&snippet.Title,
			&snippet.Language,
			&snippet.Code,
			&snippet.Notes,
			&snippet.CreatedAt,
			&snippet.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snippet: %w", err)
		}
		snippets = append(snippets, &snippet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snippets: %w", err)
	}

	return snippets, nil
}

func (p *DatabaseProvider) CreateSnippet(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error) {
	query := `
		INSERT INTO snippets (owner_id, title, language, code, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, title, language, code, notes, created_at, updated_at
	`

	var created models.Snippet
	err := p.pool.QueryRow(ctx, query,
		snippet.OwnerID,
		snippet.Title,
		snippet.Language,
		snippet.Code,
		snippet.Notes,
	).Scan(
		&created.ID,
		&created.OwnerID,
		&created.Title,
		&created.Language,
		&created.Code,
		&created.Notes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create snippet: %w", err)
	}

	return &created, nil
}

func (p *DatabaseProvider) UpdateSnippet(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error) {
	query := `
		UPDATE snippets
		SET title = $3, language = $4, code = $5, notes = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, language, code, notes, created_at, updated_at
	`

	var updated models.Snippet
	err := p.pool.QueryRow(ctx, query,
		snippet.ID,
		snippet.OwnerID,
		snippet.Title,
		snippet.Language,
		snippet.Code,
		snippet.Notes,
	).Scan(
		&updated.ID,
		&updated.OwnerID,
		&updated.Title,
		&updated.Language,
		&updated.Code,
		&updated.Notes,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update snippet: %w", err)
	}

	return &updated, nil
}

func (p *DatabaseProvider) DeleteSnippet(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM snippets
		WHERE id = $1 AND owner_id = $2
	`

	result, err := p.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete snippet: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
