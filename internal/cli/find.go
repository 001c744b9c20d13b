package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/gastos/internal/model"
)

var (
	findYear        string
	findMonth       string
	findDay         string
	findCategory    string
	findDescription string
	findAmount      string
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find expenses by field filters",
	Long: `Find expenses matching the given field filters.

A flag left empty imposes no constraint; a non-empty flag must match the
stored value exactly (no substring matching, case-sensitive). Filters
combine with AND. With no flags at all, find returns every record, same as
list.

Examples:
  gastos find --category 3
  gastos find --year 2024 --month 05
  gastos find --description "Lunch" --amount 20 --json`,
	Args: cobra.NoArgs,
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVar(&findYear, "year", "", "Filter by year")
	findCmd.Flags().StringVar(&findMonth, "month", "", "Filter by month")
	findCmd.Flags().StringVar(&findDay, "day", "", "Filter by day")
	findCmd.Flags().StringVar(&findCategory, "category", "", "Filter by category code")
	findCmd.Flags().StringVar(&findDescription, "description", "", "Filter by description")
	findCmd.Flags().StringVar(&findAmount, "amount", "", "Filter by amount")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	criteria := model.Expense{
		Year:        findYear,
		Month:       findMonth,
		Day:         findDay,
		Category:    findCategory,
		Description: findDescription,
		Amount:      findAmount,
	}

	ledger, kv, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	expenses, err := ledger.Query(criteria)
	if err != nil {
		return fmt.Errorf("failed to query expenses: %w", err)
	}

	if GetJSONOutput() {
		return printExpenseJSON(os.Stdout, expenses)
	}

	printExpenseTable(os.Stdout, expenses)
	return nil
}
