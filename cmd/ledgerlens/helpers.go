package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/fennwick/ledgerlens/internal/config"
	"github.com/fennwick/ledgerlens/internal/craft"
	"github.com/fennwick/ledgerlens/internal/storage"
)

// initStorage opens the local database and brings the schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// loadCraftConfig reads the persisted Craft configuration and lets viper
// values (flags, env, config file) override individual fields.
func loadCraftConfig(ctx context.Context, store *storage.SQLiteStorage) (craft.Config, error) {
	cfg, err := store.GetCraftConfig(ctx)
	if err != nil {
		return craft.Config{}, err
	}

	if v := viper.GetString("craft.api_base_url"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := viper.GetString("craft.api_key"); v != "" {
		cfg.APIKey = v
	}
	if v := viper.GetString("craft.collection_id"); v != "" {
		cfg.CollectionID = v
	}

	return cfg.Normalize(), nil
}
