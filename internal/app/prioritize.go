package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BoD/a/internal/store"
)

var deprioritizeCmd = &cobra.Command{
	Use:   "deprioritize <item-id>",
	Short: "Pin an item to the bottom of the list",
	Long: `Mark the item deprioritized. Its usage history is erased and further
launches stop counting, so it stays at the bottom of the ranking until
undeprioritized. Active notifications still float it up.`,
	Example: `  alauncher deprioritize com.example.game/Main`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := st.Deprioritize(args[0]); err != nil {
				return fmt.Errorf("failed to deprioritize: %w", err)
			}
			fmt.Printf("Deprioritized %s\n", args[0])
			return nil
		})
	},
}

var undeprioritizeCmd = &cobra.Command{
	Use:   "undeprioritize <item-id>",
	Short: "Let an item rank by usage again",
	Long: `Remove the deprioritized mark. The item starts from a clean usage
history; its pre-deprioritization launches stay erased.`,
	Example: `  alauncher undeprioritize com.example.game/Main`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := st.Undeprioritize(args[0]); err != nil {
				return fmt.Errorf("failed to undeprioritize: %w", err)
			}
			fmt.Printf("Undeprioritized %s\n", args[0])
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(deprioritizeCmd)
	RootCmd.AddCommand(undeprioritizeCmd)
}

// withStore opens the configured store, runs fn, and closes it.
func withStore(fn func(*store.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}
