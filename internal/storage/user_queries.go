package storage

import (
	"context"
	"errors"
	"fmt"
	"founderdeck/internal/models"

	"github.com/jackc/pgx/v5"
)

// UpsertUser adds a user to the database, or refreshes the existing row on a
// repeat sign-in.
func (p *DatabaseProvider) UpsertUser(ctx context.Context, sub, iss, username, displayName, email string) (*models.User, error) {
	query := `
		INSERT INTO users (sub, iss, username, display_name, email, last_logged_in, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (iss, sub)
		DO UPDATE SET
			username = EXCLUDED.username,
			display_name = EXCLUDED.display_name,
			email = EXCLUDED.email,
			last_logged_in = CURRENT_TIMESTAMP
	`

	_, err := p.pool.Exec(ctx, query, sub, iss, username, displayName, email)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return p.GetUserByIssSub(ctx, iss, sub)
}

// GetUserByIssSub returns a user given their iss and sub claims.
func (p *DatabaseProvider) GetUserByIssSub(ctx context.Context, iss, sub string) (*models.User, error) {
	query := `
		SELECT id, iss, sub, username, display_name, email, last_logged_in, created_at
		FROM users
		WHERE iss = $1 AND sub = $2
	`

	var user models.User
	err := p.pool.QueryRow(ctx, query, iss, sub).Scan(
		&user.ID,
		&user.Iss,
		&user.Sub,
		&user.Username,
		&user.DisplayName,
		&user.Email,
		&user.LastLoggedIn,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
