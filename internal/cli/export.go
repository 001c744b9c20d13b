package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses as CSV",
	Long: `Export every expense as CSV, in ascending id order.

The header row is: id,year,month,day,category,description,amount. Field
values are written verbatim, exactly as stored.

Examples:
  gastos export
  gastos export --output expenses.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ledger, kv, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	expenses, err := ledger.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"id", "year", "month", "day", "category", "description", "amount"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range expenses {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Year, e.Month, e.Day, e.Category, e.Description, e.Amount,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	if exportOutput != "" && !IsQuiet() {
		fmt.Printf("Exported %d record(s) to %s\n", len(expenses), exportOutput)
	}

	return nil
}
