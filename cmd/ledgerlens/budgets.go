package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fennwick/ledgerlens/internal/cli"
	"github.com/fennwick/ledgerlens/internal/craft"
	"github.com/fennwick/ledgerlens/internal/model"
	"github.com/fennwick/ledgerlens/internal/report"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage monthly category budgets",
		Long:  `List, set and remove monthly spending limits per category, and compare them against current-month spend.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(removeBudgetCmd())
	cmd.AddCommand(budgetProgressCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := store.GetBudgets(ctx)
			if err != nil {
				return err
			}

			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets configured. Use 'ledgerlens budgets set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Monthly limit"))
			for _, b := range budgets {
				fmt.Fprintf(w, "%s\t%s\n", b.Category, formatAmount(b.MonthlyLimit))
			}
			return w.Flush()
		},
	}
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <monthly-limit>",
		Short: "Set the monthly limit for a category",
		Long: `Create or update a budget. The category label must match the expense
category exactly, including any emoji prefix, for spend to count against it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid monthly limit %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budget := model.Budget{Category: args[0], MonthlyLimit: limit}
			if err := store.SetBudget(ctx, budget); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("✓ Budget for %q set to %s/month", budget.Category, formatAmount(limit))))
			return nil
		},
	}
}

func removeBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category>",
		Short: "Remove the budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteBudget(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Removed budget for %q", args[0])))
			return nil
		},
	}
}

func budgetProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Compare current-month spend against budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := store.GetBudgets(ctx)
			if err != nil {
				return err
			}
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets configured. Use 'ledgerlens budgets set' to create one."))
				return nil
			}

			cfg, err := loadCraftConfig(ctx, store)
			if err != nil {
				return err
			}

			expenses, err := craft.NewClient(cfg).FetchExpenses(ctx)
			if err != nil {
				return err
			}

			renderBudgetProgress(report.BudgetProgress(expenses, budgets))
			return nil
		},
	}
}
