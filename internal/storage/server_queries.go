package storage

import (
	"context"
	"errors"
	"fmt"
	"founderdeck/internal/models"
	"time"

	"github.com/jackc/pgx/v5"
)

const serverColumns = "id, owner_id, name, check_url, status, latency_ms, last_checked_at, created_at, updated_at"

func scanServer(row pgx.Row) (*models.TrackedServer, error) {
	var server models.TrackedServer
	err := row.Scan(
		&server.ID,
		&server.OwnerID,
		&server.Name,
		&server.CheckURL,
		&server.Status,
		&server.LatencyMillis,
		&server.LastCheckedAt,
		&server.CreatedAt,
		&server.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &server, nil
}

func (p *DatabaseProvider) ListServers(ctx context.Context, ownerID string) ([]*models.TrackedServer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM servers
		WHERE owner_id = $1
		ORDER BY name ASC
	`, serverColumns)

	rows, err := p.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	defer rows.Close()

	servers := make([]*models.TrackedServer, 0)
	for rows.Next() {
		server, err := scanServer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan server: %w", err)
		}
		servers = append(servers, server)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate servers: %w", err)
	}

	return servers, nil
}

// ListAllServers returns every tracked server regardless of owner. Used by
// the background health job.
func (p *DatabaseProvider) ListAllServers(ctx context.Context) ([]*models.TrackedServer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM servers
		ORDER BY name ASC
	`, serverColumns)

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all servers: %w", err)
	}
	defer rows.Close()

	servers := make([]*models.TrackedServer, 0)
	for rows.Next() {
		server, err := scanServer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan server: %w", err)
		}
		servers = append(servers, server)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate servers: %w", err)
	}

	return servers, nil
}

func (p *DatabaseProvider) CreateServer(ctx context.Context, server *models.TrackedServer) (*models.TrackedServer, error) {
	query := fmt.Sprintf(`
		INSERT INTO servers (owner_id, name, check_url)
		VALUES ($1, $2, $3)
		RETURNING %s
	`, serverColumns)

	created, err := scanServer(p.pool.QueryRow(ctx, query, server.OwnerID, server.Name, server.CheckURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return created, nil
}

func (p *DatabaseProvider) UpdateServer(ctx context.Context, server *models.TrackedServer) (*models.TrackedServer, error) {
	query := fmt.Sprintf(`
		UPDATE servers
		SET name = $3, check_url = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND owner_id = $2
		RETURNING %s
	`, serverColumns)

	updated, err := scanServer(p.pool.QueryRow(ctx, query, server.ID, server.OwnerID, server.Name, server.CheckURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update server: %w", err)
	}

	return updated, nil
}

// UpdateServerStatus records a health probe result. Owner scoping is skipped:
// only the background job calls this and it operates on rows it just read.
func (p *DatabaseProvider) UpdateServerStatus(ctx context.Context, id string, status models.ServerStatus, latencyMillis int64, checkedAt time.Time) error {
	query := `
		UPDATE servers
		SET status = $2, latency_ms = $3, last_checked_at = $4
		WHERE id = $1
	`

	if _, err := p.pool.Exec(ctx, query, id, status, latencyMillis, checkedAt); err != nil {
		return fmt.Errorf("failed to update server status: %w", err)
	}

	return nil
}

func (p *DatabaseProvider) DeleteServer(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM servers
		WHERE id = $1 AND owner_id = $2
	`

	result, err := p.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete server: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
