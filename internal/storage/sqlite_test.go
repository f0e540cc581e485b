package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennwick/ledgerlens/internal/craft"
	"github.com/fennwick/ledgerlens/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStorage(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestBudgetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	budgets, err := store.GetBudgets(ctx)
	require.NoError(t, err)
	assert.Empty(t, budgets)

	require.NoError(t, store.SetBudget(ctx, model.Budget{Category: "🛒 Groceries", MonthlyLimit: 400}))
	require.NoError(t, store.SetBudget(ctx, model.Budget{Category: "☕ Dining", MonthlyLimit: 150}))

	// Upsert overwrites the limit.
	require.NoError(t, store.SetBudget(ctx, model.Budget{Category: "🛒 Groceries", MonthlyLimit: 450}))

	budgets, err = store.GetBudgets(ctx)
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, "☕ Dining", budgets[0].Category)
	assert.InDelta(t, 450, budgets[1].MonthlyLimit, 1e-9)
}

func TestBudgetValidation(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	assert.Error(t, store.SetBudget(ctx, model.Budget{Category: "", MonthlyLimit: 10}))
	assert.Error(t, store.SetBudget(ctx, model.Budget{Category: "x", MonthlyLimit: -1}))
}

func TestDeleteBudget(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.SetBudget(ctx, model.Budget{Category: "x", MonthlyLimit: 10}))
	require.NoError(t, store.DeleteBudget(ctx, "x"))

	// Deleting a missing budget is fine.
	require.NoError(t, store.DeleteBudget(ctx, "x"))

	budgets, err := store.GetBudgets(ctx)
	require.NoError(t, err)
	assert.Empty(t, budgets)
}

func TestCraftConfigRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	cfg, err := store.GetCraftConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, craft.Config{}, cfg)

	require.NoError(t, store.SaveCraftConfig(ctx, craft.Config{
		APIBaseURL:   "https://x/api/v1/",
		APIKey:       "Bearer secret",
		CollectionID: " C1 ",
	}))

	cfg, err = store.GetCraftConfig(ctx)
	require.NoError(t, err)
	// Config is normalized on save.
	assert.Equal(t, craft.Config{
		APIBaseURL:   "https://x/api/v1",
		APIKey:       "secret",
		CollectionID: "C1",
	}, cfg)

	require.NoError(t, store.ClearCraftConfig(ctx))
	cfg, err = store.GetCraftConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, craft.Config{}, cfg)
}
