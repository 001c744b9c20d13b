package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show ledger status",
	Long: `Show the resolved backend, store location, record count and the id
the next add will assign.

Examples:
  gastos status
  gastos status --json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ledger, kv, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	count, err := ledger.Count()
	if err != nil {
		return fmt.Errorf("failed to count expenses: %w", err)
	}

	nextID, err := ledger.NextID()
	if err != nil {
		return fmt.Errorf("failed to read id counter: %w", err)
	}

	if GetJSONOutput() {
		result := map[string]interface{}{
			"path":    kv.Path(),
			"records": count,
			"next_id": nextID,
		}
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Store:    %s\n", kv.Path())
	fmt.Printf("Records:  %d\n", count)
	fmt.Printf("Next id:  %d\n", nextID)

	return nil
}
