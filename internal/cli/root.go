// Package cli provides the command-line interface for gastos.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	jsonOutput bool
	dataDir    string
	backend    string
	quiet      bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gastos",
	Short: "A local personal-expense ledger",
	Long: `Gastos is a lightweight, single-binary personal-expense tracker.

Expenses live in a flat key-value namespace on local disk. Each record gets
a monotonically increasing integer id that is never reused; deleting a
record leaves a permanent hole in the id range.

Features:
  - Verbatim fields: values are stored exactly as entered, no normalization
  - Field filters: narrow by any combination of fields with exact matching
  - Two backends: SQLite (default) or a single JSON file
  - Agent-friendly: JSON output on every command`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent parsing)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "Data directory (default: $GASTOS_DIR or ~/.gastos)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Storage backend: sqlite or file (default: $GASTOS_BACKEND or sqlite)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug output")
}

// ExitCode is used to communicate exit codes for testing
var ExitCode int

// ExitFunc is the function called to exit the program
// Can be overridden for testing
var ExitFunc = os.Exit

// Exit sets the exit code and calls the exit function
func Exit(code int) {
	ExitCode = code
	ExitFunc(code)
}

// GetJSONOutput returns whether JSON output is enabled
func GetJSONOutput() bool {
	return jsonOutput
}

// GetDataDir returns the data directory override
func GetDataDir() string {
	return dataDir
}

// GetBackend returns the backend override
func GetBackend() string {
	return backend
}

// IsQuiet returns whether quiet mode is enabled
func IsQuiet() bool {
	return quiet
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verbose
}
