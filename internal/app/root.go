package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BoD/a/internal/config"
	"github.com/BoD/a/internal/store"
)

var (
	flagConfig string
	flagDB     string

	// RootCmd is the root command for alauncher
	RootCmd = &cobra.Command{
		Use:   "alauncher",
		Short: "Usage-ranked launch-item aggregation",
		Long: `alauncher merges applications, pinned shortcuts, and starred contacts
into one list ordered by how often you actually launch things, with
items carrying active notifications floated to the top.

Every launch feeds two sliding windows of usage history: a long window
of the last 600 launches and a short window of the last 20, the short
one weighted three times as heavily so recent habits dominate.

Examples:
  # Show the ranked item list
  alauncher list

  # Filter it (accent- and case-insensitive)
  alauncher search cafe

  # Record a launch
  alauncher record org.mozilla.firefox/Main

  # Keep an item out of the ranking
  alauncher deprioritize com.example.game/Main

  # Follow the live list as sources and history change
  alauncher watch`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.config/alauncher/config.toml)")
	RootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database path (default: ~/.alauncher/a.db)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the configuration, honoring the --config flag.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// openStore opens the usage database, creating the schema on first use.
func openStore(cfg config.Config) (*store.Store, error) {
	path := flagDB
	if path == "" {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		path = cfg.DBPath()
	}

	st, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return st, nil
}
