package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/gastos/internal/model"
)

var (
	addYear     string
	addMonth    string
	addDay      string
	addDate     string
	addCategory string
	addAmount   string
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Record a new expense",
	Long: `Record a new expense in the ledger.

All six fields are required: year, month, day, category, description and
amount. Values are stored exactly as given; the ledger performs no
normalization. --date YYYY-MM-DD is a shorthand that fills year, month and
day in one flag.

Category codes:
  1=Alimentacao  2=Educação  3=Lazer  4=Saúde  5=Transporte

The assigned id is printed to stdout. Ids only ever grow; correcting a
record means removing it and adding a new one.

Examples:
  gastos add "Lunch" --date 2024-05-10 --category 1 --amount 20
  gastos add "Bus fare" --year 2024 --month 05 --day 11 --category 5 --amount 4.50
  gastos add "Cinema" --date 2024-05-12 --category 3 --amount 30 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addYear, "year", "", "Expense year")
	addCmd.Flags().StringVar(&addMonth, "month", "", "Expense month")
	addCmd.Flags().StringVar(&addDay, "day", "", "Expense day")
	addCmd.Flags().StringVar(&addDate, "date", "", "Shorthand for --year/--month/--day (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category code (1-5)")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "Expense amount")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	description := strings.TrimSpace(args[0])

	year, month, day := addYear, addMonth, addDay
	if addDate != "" {
		parts := strings.SplitN(addDate, "-", 3)
		if len(parts) != 3 {
			fmt.Fprintf(os.Stderr, "Error: invalid --date %q (expected YYYY-MM-DD)\n", addDate)
			Exit(2)
			return nil
		}
		year, month, day = parts[0], parts[1], parts[2]
	}

	expense := &model.Expense{
		Year:        year,
		Month:       month,
		Day:         day,
		Category:    addCategory,
		Description: description,
		Amount:      addAmount,
	}

	// Completeness is checked here; the ledger does not re-validate.
	if !expense.IsComplete() {
		fmt.Fprintf(os.Stderr, "Error: %v (year, month, day, category, description, amount)\n", model.ErrIncompleteExpense)
		Exit(2)
		return nil
	}

	ledger, kv, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	id, err := ledger.Save(expense)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	if GetJSONOutput() {
		data, err := json.Marshal(toExpenseJSON(expense))
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	} else if !IsQuiet() {
		fmt.Println(id)
		if IsVerbose() {
			fmt.Printf("  date: %s\n", formatDate(expense))
			fmt.Printf("  category: %s\n", categoryLabel(expense.Category))
			fmt.Printf("  amount: %s\n", expense.Amount)
		}
	}

	return nil
}
