package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fennwick/ledgerlens/internal/model"
)

// GetBudgets returns all configured budgets ordered by category.
func (s *SQLiteStorage) GetBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, monthly_limit
		FROM budgets
		ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.Category, &b.MonthlyLimit); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	slog.Debug("retrieved budgets", "count", len(budgets))
	return budgets, nil
}

// SetBudget creates or updates the budget for a category.
func (s *SQLiteStorage) SetBudget(ctx context.Context, budget model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if budget.Category == "" {
		return fmt.Errorf("budget category cannot be empty")
	}
	if budget.MonthlyLimit < 0 {
		return fmt.Errorf("monthly limit cannot be negative, got %.2f", budget.MonthlyLimit)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (category, monthly_limit, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(category) DO UPDATE SET
			monthly_limit = excluded.monthly_limit,
			updated_at = CURRENT_TIMESTAMP`,
		budget.Category, budget.MonthlyLimit)
	if err != nil {
		return fmt.Errorf("failed to save budget for %q: %w", budget.Category, err)
	}

	return nil
}

// DeleteBudget removes the budget for a category. Deleting a category with
// no budget is not an error.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if category == "" {
		return fmt.Errorf("budget category cannot be empty")
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE category = ?`, category); err != nil {
		return fmt.Errorf("failed to delete budget for %q: %w", category, err)
	}

	return nil
}
