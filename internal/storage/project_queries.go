package storage

import (
	"context"
	"errors"
	"fmt"
	"founderdeck/internal/models"

	"github.com/jackc/pgx/v5"
)

func (p *DatabaseProvider) ListProjects(ctx context.Context, ownerID string) ([]*models.Project, error) {
	query := `
		SELECT id, owner_id, name, description, status, url, repo_url, created_at, updated_at
		FROM projects
		WHERE owner_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := p.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(
			&project.ID,
			&project.OwnerID,
			&project.Name,
			&project.Description,
			&project.Status,
			&project.URL,
			&project.RepoURL,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

func (p *DatabaseProvider) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	query := `
		INSERT INTO projects (owner_id, name, description, status, url, repo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, name, description, status, url, repo_url, created_at, updated_at
	`

	var created models.Project
	err := p.pool.QueryRow(ctx, query,
		project.OwnerID,
		project.Name,
		project.Description,
		project.Status,
		project.URL,
		project.RepoURL,
	).Scan(
		&created.ID,
		&created.OwnerID,
		&created.Name,
		&created.Description,
		&created.Status,
		&created.URL,
		&created.RepoURL,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &created, nil
}

// UpdateProject mutates a project only when the caller owns it.
func (p *DatabaseProvider) UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	query := `
		UPDATE projects
		SET name = $3, description = $4, status = $5, url = $6, repo_url = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, name, description, status, url, repo_url, created_at, updated_at
	`

	var updated models.Project
	err := p.pool.QueryRow(ctx, query,
		project.ID,
		project.OwnerID,
		project.Name,
		project.Description,
		project.Status,
		project.URL,
		project.RepoURL,
	).Scan(
		&updated.ID,
		&updated.OwnerID,
		&updated.Name,
		&updated.Description,
		&updated.Status,
		&updated.URL,
		&updated.RepoURL,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &updated, nil
}

func (p *DatabaseProvider) DeleteProject(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM projects
		WHERE id = $1 AND owner_id = $2
	`

	result, err := p.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
