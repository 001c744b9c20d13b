package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/user/gastos/internal/config"
	"github.com/user/gastos/internal/model"
	"github.com/user/gastos/internal/storage"
)

// openLedger resolves configuration and opens the persistent store.
// The caller must close the returned KV.
func openLedger() (*storage.Ledger, storage.KV, error) {
	cfg := config.Load(GetDataDir(), GetBackend())
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	kv, err := storage.Open(cfg.Backend, cfg.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	ledger := storage.NewLedger(kv)
	if err := ledger.Init(); err != nil {
		kv.Close()
		return nil, nil, fmt.Errorf("failed to initialize ledger: %w", err)
	}

	return ledger, kv, nil
}

// expenseJSON is the CLI's JSON rendering of an expense, id included.
// The persisted value excludes the id, so output needs its own shape.
type expenseJSON struct {
	ID          int64  `json:"id"`
	Year        string `json:"year"`
	Month       string `json:"month"`
	Day         string `json:"day"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

func toExpenseJSON(e *model.Expense) expenseJSON {
	return expenseJSON{
		ID:          e.ID,
		Year:        e.Year,
		Month:       e.Month,
		Day:         e.Day,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
	}
}

func toExpenseJSONList(expenses []*model.Expense) []expenseJSON {
	out := make([]expenseJSON, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseJSON(e)
	}
	return out
}

// formatDate renders the stored date parts as year-month-day, verbatim.
func formatDate(e *model.Expense) string {
	return fmt.Sprintf("%s-%s-%s", e.Year, e.Month, e.Day)
}

// categoryLabel returns the display label for a category code, falling back
// to the raw code when it is unknown.
func categoryLabel(code string) string {
	label, err := model.CategoryLabel(code)
	if err != nil {
		return code
	}
	return label
}

// printExpenseJSON writes the listing as a single JSON array.
func printExpenseJSON(out io.Writer, expenses []*model.Expense) error {
	data, err := json.Marshal(toExpenseJSONList(expenses))
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// printExpenseTable writes a human-readable listing.
func printExpenseTable(out io.Writer, expenses []*model.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(out, "No expenses recorded.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tDESCRIPTION\tAMOUNT")
	for _, e := range expenses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			e.ID, formatDate(e), categoryLabel(e.Category), e.Description, e.Amount)
	}
	w.Flush()
}
