package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/user/gastos/internal/model"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "remove"},
	Short:   "Delete an expense",
	Long: `Delete an expense by id.

Deletion is permanent and the id is permanently retired: the counter never
decreases and the id is never handed out again. There is no edit command;
correcting a record means removing it and adding a new one.

Examples:
  gastos rm 3
  gastos rm 3 --yes     # Skip confirmation
  gastos rm 3 --json    # Output as JSON`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		fmt.Fprintf(os.Stderr, "Error: %v: %q (expected a positive integer)\n", model.ErrInvalidID, args[0])
		Exit(2)
		return nil
	}

	ledger, kv, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	// The store-level delete is a no-op for missing ids; the CLI still
	// reports them so typos are visible.
	expense, err := ledger.Get(id)
	if err != nil {
		if errors.Is(err, model.ErrExpenseNotFound) {
			fmt.Fprintf(os.Stderr, "Error: expense %d not found\n", id)
			Exit(4)
			return nil
		}
		return fmt.Errorf("failed to get expense: %w", err)
	}

	if !rmYes && !IsQuiet() {
		fmt.Printf("Delete expense %d (%s, %s)? [y/N]: ", id, expense.Description, expense.Amount)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(os.Stderr, "Aborted.")
			Exit(1)
			return nil
		}
	}

	if err := ledger.Delete(id); err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", id, err)
	}

	if GetJSONOutput() {
		result := map[string]interface{}{
			"deleted": id,
		}
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	} else if !IsQuiet() {
		fmt.Printf("Deleted %d\n", id)
	}

	return nil
}
