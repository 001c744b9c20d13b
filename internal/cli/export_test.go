package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCommand(t *testing.T) {
	t.Run("writes CSV to stdout", func(t *testing.T) {
		dir := t.TempDir()

		runGastos(t, dir, "add", "Lunch", "--date", "2024-05-10", "--category", "1", "--amount", "20")

		out, err := runGastos(t, dir, "export")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected header plus one row, got %d lines", len(lines))
		}
		if lines[0] != "id,year,month,day,category,description,amount" {
			t.Errorf("unexpected header: %q", lines[0])
		}
		if lines[1] != "1,2024,05,10,1,Lunch,20" {
			t.Errorf("unexpected row: %q", lines[1])
		}
	})

	t.Run("writes to a file with --output", func(t *testing.T) {
		dir := t.TempDir()
		outPath := filepath.Join(dir, "expenses.csv")

		runGastos(t, dir, "add", "Cinema", "--date", "2024-05-12", "--category", "3", "--amount", "30")

		_, err := runGastos(t, dir, "export", "--output", outPath)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("failed to read exported file: %v", err)
		}
		if !strings.Contains(string(data), "Cinema") {
			t.Errorf("expected exported row, got %q", string(data))
		}
	})
}
