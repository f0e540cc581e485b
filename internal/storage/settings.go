package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fennwick/ledgerlens/internal/craft"
)

// Setting keys for the Craft API configuration.
const (
	settingAPIBaseURL   = "craft.api_base_url"
	settingAPIKey       = "craft.api_key"
	settingCollectionID = "craft.collection_id"
)

// GetCraftConfig loads the persisted Craft API configuration. Unset fields
// come back as empty strings.
func (s *SQLiteStorage) GetCraftConfig(ctx context.Context) (craft.Config, error) {
	if err := validateContext(ctx); err != nil {
		return craft.Config{}, err
	}

	cfg := craft.Config{}
	fields := map[string]*string{
		settingAPIBaseURL:   &cfg.APIBaseURL,
		settingAPIKey:       &cfg.APIKey,
		settingCollectionID: &cfg.CollectionID,
	}

	for key, dest := range fields {
		value, err := s.getSetting(ctx, key)
		if err != nil {
			return craft.Config{}, err
		}
		*dest = value
	}

	return cfg.Normalize(), nil
}

// SaveCraftConfig persists the Craft API configuration, normalizing on the
// way in.
func (s *SQLiteStorage) SaveCraftConfig(ctx context.Context, cfg craft.Config) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	cfg = cfg.Normalize()
	fields := map[string]string{
		settingAPIBaseURL:   cfg.APIBaseURL,
		settingAPIKey:       cfg.APIKey,
		settingCollectionID: cfg.CollectionID,
	}

	for key, value := range fields {
		if err := s.setSetting(ctx, key, value); err != nil {
			return err
		}
	}

	return nil
}

// ClearCraftConfig removes the persisted Craft API configuration.
func (s *SQLiteStorage) ClearCraftConfig(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	for _, key := range []string{settingAPIBaseURL, settingAPIKey, settingCollectionID} {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
			return fmt.Errorf("failed to clear setting %q: %w", key, err)
		}
	}

	return nil
}

func (s *SQLiteStorage) getSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStorage) setSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}
	return nil
}
