package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fennwick/ledgerlens/internal/cli"
	"github.com/fennwick/ledgerlens/internal/craft"
	"github.com/fennwick/ledgerlens/internal/model"
	"github.com/fennwick/ledgerlens/internal/report"
)

func fetchCmd() *cobra.Command {
	var (
		rangeFlag  string
		jsonOutput bool
		noBudgets  bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch expenses from Craft and show the spending report",
		Long: `Fetch collection items from the configured Craft API, normalize them into
expense records and print summary stats, breakdowns, trends and budget
progress for the selected date range.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rng := model.DateRange(rangeFlag)
			if !rng.Valid() {
				return fmt.Errorf("invalid range %q (want all, thisMonth, lastMonth, last3Months or thisYear)", rangeFlag)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cfg, err := loadCraftConfig(ctx, store)
			if err != nil {
				return err
			}

			expenses, err := craft.NewClient(cfg).FetchExpenses(ctx)
			if err != nil {
				return err
			}

			var budgets []model.Budget
			if !noBudgets {
				budgets, err = store.GetBudgets(ctx)
				if err != nil {
					return err
				}
			}

			result := report.Build(expenses, rng, budgets)

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			renderReport(result, rng)
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeFlag, "range", string(model.RangeAll), "date range (all, thisMonth, lastMonth, last3Months, thisYear)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full report as JSON")
	cmd.Flags().BoolVar(&noBudgets, "no-budgets", false, "skip the budget comparison")

	return cmd
}

func renderReport(r model.Report, rng model.DateRange) {
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Spending report (%s)", rng)))

	if r.Stats.TransactionCount == 0 {
		fmt.Println(cli.InfoStyle.Render("No expenses found for this range."))
		return
	}

	fmt.Printf("%s %s across %d transactions (avg %s)\n",
		cli.BoldStyle.Render("Total:"),
		formatAmount(r.Stats.TotalSpending),
		r.Stats.TransactionCount,
		formatAmount(r.Stats.AverageTransaction))
	fmt.Printf("%s %s   %s %s   %s %s\n\n",
		cli.SubtleStyle.Render("Top category:"), r.Stats.TopCategory,
		cli.SubtleStyle.Render("Top merchant:"), r.Stats.TopMerchant,
		cli.SubtleStyle.Render("Top payment:"), r.Stats.TopPaymentMethod)

	renderCategories(r.CategoryBreakdown)
	renderMerchants(r.MerchantBreakdown)
	renderTrend(r.MonthlyTrend)

	if len(r.BudgetProgress) > 0 {
		renderBudgetProgress(r.BudgetProgress)
	}
}

func renderCategories(categories []model.CategorySummary) {
	if len(categories) == 0 {
		return
	}

	fmt.Println(cli.HeaderStyle.Render("By category"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\t%5.1f%%\t%d txns\n",
			c.Category, formatAmount(c.Total), c.Percentage, c.Count)
	}
	_ = w.Flush()
	fmt.Println()
}

func renderMerchants(merchants []model.MerchantSummary) {
	if len(merchants) == 0 {
		return
	}

	const maxRows = 10

	fmt.Println(cli.HeaderStyle.Render("Top merchants"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, m := range merchants {
		if i == maxRows {
			break
		}
		fmt.Fprintf(w, "%s\t%s\t%d txns\tavg %s\n",
			m.Merchant, formatAmount(m.Total), m.Count, formatAmount(m.AverageTransaction))
	}
	_ = w.Flush()
	fmt.Println()
}

func renderTrend(trend []model.MonthlySummary) {
	if len(trend) == 0 {
		return
	}

	fmt.Println(cli.HeaderStyle.Render("Monthly trend"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range trend {
		fmt.Fprintf(w, "%s\t%s\t%d txns\n", m.Month, formatAmount(m.Total), m.Count)
	}
	_ = w.Flush()
	fmt.Println()
}

func renderBudgetProgress(progress []model.BudgetProgress) {
	fmt.Println(cli.HeaderStyle.Render("Budgets (this month)"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range progress {
		status := cli.BudgetStatusStyle(string(p.Status)).Render(string(p.Status))
		fmt.Fprintf(w, "%s\t%s of %s\t%5.1f%%\t%s\n",
			p.Category, formatAmount(p.Spent), formatAmount(p.Limit), p.Percentage, status)
	}
	_ = w.Flush()
	fmt.Println()
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("$%s", addThousandsSeparators(fmt.Sprintf("%.2f", amount)))
}

// addThousandsSeparators inserts commas into the integer part of a formatted
// amount.
func addThousandsSeparators(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	if fracPart == "" {
		return sign + sb.String()
	}
	return sign + sb.String() + "." + fracPart
}
