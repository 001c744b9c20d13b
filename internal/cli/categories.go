package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/user/gastos/internal/model"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List category codes and labels",
	Long: `List the category codes accepted by add and find, with their
display labels.

Examples:
  gastos categories
  gastos categories --json`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	codes := model.CategoryCodes()

	if GetJSONOutput() {
		result := make(map[string]string, len(codes))
		for _, code := range codes {
			label, err := model.CategoryLabel(code)
			if err != nil {
				return err
			}
			result[code] = label
		}
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tLABEL")
	for _, code := range codes {
		label, err := model.CategoryLabel(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", code, label)
	}
	w.Flush()

	return nil
}
