package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetUserSetting returns the stored value for (owner, name), or
// ErrSettingNotFound.
func (p *DatabaseProvider) GetUserSetting(ctx context.Context, ownerID, name string) (string, error) {
	query := `
		SELECT value
		FROM user_settings
		WHERE owner_id = $1 AND name = $2
	`

	var value string
	err := p.pool.QueryRow(ctx, query, ownerID, name).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		return "", fmt.Errorf("failed to get setting %q: %w", name, err)
	}

	return value, nil
}

// UpsertUserSetting writes the value for (owner, name). The primary key on
// (owner_id, name) guarantees at most one live row per pair; re-linking a
// credential overwrites rather than duplicates.
func (p *DatabaseProvider) UpsertUserSetting(ctx context.Context, ownerID, name, value string) error {
	query := `
		INSERT INTO user_settings (owner_id, name, value, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (owner_id, name)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := p.pool.Exec(ctx, query, ownerID, name, value); err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", name, err)
	}

	return nil
}

// DeleteUserSetting removes the (owner, name) row. Deleting an absent row is
// not an error.
func (p *DatabaseProvider) DeleteUserSetting(ctx context.Context, ownerID, name string) error {
	query := `
		DELETE FROM user_settings
		WHERE owner_id = $1 AND name = $2
	`

	if _, err := p.pool.Exec(ctx, query, ownerID, name); err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", name, err)
	}

	return nil
}
