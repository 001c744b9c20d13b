package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/user/gastos/internal/config"
	"github.com/user/gastos/internal/storage"
	"github.com/user/gastos/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-list expenses whenever the store changes",
	Long: `Watch the data directory and reprint the expense list whenever the
store file changes on disk, for example from another terminal writing to the
same ledger.

The listing is printed once immediately, then again after every change.
Press Ctrl-C to stop.

Examples:
  gastos watch
  gastos watch --json`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load(GetDataDir(), GetBackend())
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Re-open per reload so external writes are always picked up.
	reload := func() error {
		kv, err := storage.Open(cfg.Backend, cfg.Dir)
		if err != nil {
			return err
		}
		defer kv.Close()

		ledger := storage.NewLedger(kv)
		expenses, err := ledger.ListAll()
		if err != nil {
			return err
		}

		if GetJSONOutput() {
			return printExpenseJSON(os.Stdout, expenses)
		}
		printExpenseTable(os.Stdout, expenses)
		return nil
	}

	var logFn watch.LogFunc
	if IsVerbose() {
		logFn = func(format string, a ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	files := []string{storage.DBFileName, storage.JSONFileName}
	watcher, err := watch.NewWatcher(cfg.Dir, files, reload, logFn)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	if err := reload(); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	return nil
}
