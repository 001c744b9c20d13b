package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStatusCommand(t *testing.T) {
	t.Run("fresh ledger", func(t *testing.T) {
		dir := t.TempDir()

		out, err := runGastos(t, dir, "status", "--json")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var result map[string]interface{}
		if err := json.Unmarshal([]byte(out), &result); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}
		if result["records"] != float64(0) {
			t.Errorf("expected 0 records, got %v", result["records"])
		}
		if result["next_id"] != float64(1) {
			t.Errorf("expected next_id 1, got %v", result["next_id"])
		}
	})

	t.Run("counts live records, next id survives deletes", func(t *testing.T) {
		dir := t.TempDir()

		runGastos(t, dir, "add", "Lunch", "--date", "2024-05-10", "--category", "1", "--amount", "20")
		runGastos(t, dir, "add", "Cinema", "--date", "2024-05-12", "--category", "3", "--amount", "30")
		runGastos(t, dir, "rm", "1", "--yes")

		out, err := runGastos(t, dir, "status", "--json")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var result map[string]interface{}
		if err := json.Unmarshal([]byte(out), &result); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}
		if result["records"] != float64(1) {
			t.Errorf("expected 1 record, got %v", result["records"])
		}
		if result["next_id"] != float64(3) {
			t.Errorf("expected next_id 3, got %v", result["next_id"])
		}
	})

	t.Run("human output names the store path", func(t *testing.T) {
		dir := t.TempDir()

		out, err := runGastos(t, dir, "status")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out, "gastos.json") {
			t.Errorf("expected store path in output, got %q", out)
		}
	})
}
