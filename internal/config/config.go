// Package config resolves runtime configuration for the gastos CLI.
// Resolution priority is flag value, then environment, then default; a .env
// file in the working directory is loaded first if present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/user/gastos/internal/model"
	"github.com/user/gastos/internal/storage"
)

// Config holds resolved runtime settings.
type Config struct {
	// Dir is the data directory holding the persistent store.
	Dir string
	// Backend selects the KV implementation: "sqlite" or "file".
	Backend string
}

// Load resolves configuration from flag values, the environment and
// defaults. Empty flag values fall through to $GASTOS_DIR / $GASTOS_BACKEND
// and then to the defaults (~/.gastos, sqlite).
func Load(dirFlag, backendFlag string) *Config {
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()

	cfg := &Config{
		Dir:     dirFlag,
		Backend: backendFlag,
	}

	if cfg.Dir == "" {
		cfg.Dir = os.Getenv("GASTOS_DIR")
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir()
	}

	if cfg.Backend == "" {
		cfg.Backend = os.Getenv("GASTOS_BACKEND")
	}
	if cfg.Backend == "" {
		cfg.Backend = storage.BackendSQLite
	}

	return cfg
}

// Validate checks that the resolved settings are usable.
func (c *Config) Validate() error {
	switch c.Backend {
	case storage.BackendSQLite, storage.BackendFile:
	default:
		return fmt.Errorf("%w: %q (expected %q or %q)",
			model.ErrUnknownBackend, c.Backend, storage.BackendSQLite, storage.BackendFile)
	}
	if c.Dir == "" {
		return fmt.Errorf("data directory is not set")
	}
	return nil
}

// DefaultDir returns the default data directory, ~/.gastos.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gastos"
	}
	return filepath.Join(home, ".gastos")
}
