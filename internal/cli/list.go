package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all expenses",
	Long: `List every expense in the ledger in ascending id order.

The listing is a fresh full scan on every call: ids deleted in the past show
up as gaps and are never re-assigned.

Examples:
  gastos list
  gastos list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ledger, kv, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	expenses, err := ledger.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}

	if GetJSONOutput() {
		return printExpenseJSON(os.Stdout, expenses)
	}

	printExpenseTable(os.Stdout, expenses)
	return nil
}
