package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BoD/a/internal/store"
)

var ignoreCmd = &cobra.Command{
	Use:   "ignore <item-id>",
	Short: "Stop an item's notifications from affecting its rank",
	Long: `Mark the item's notifications ignored. The item keeps its usage-based
position; active notifications no longer float it to the top. Usage
history is untouched.`,
	Example: `  alauncher ignore com.example.chat/Main`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := st.IgnoreNotifications(args[0]); err != nil {
				return fmt.Errorf("failed to ignore notifications: %w", err)
			}
			fmt.Printf("Ignoring notifications for %s\n", args[0])
			return nil
		})
	},
}

var unignoreCmd = &cobra.Command{
	Use:     "unignore <item-id>",
	Short:   "Let an item's notifications affect its rank again",
	Example: `  alauncher unignore com.example.chat/Main`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := st.UnignoreNotifications(args[0]); err != nil {
				return fmt.Errorf("failed to unignore notifications: %w", err)
			}
			fmt.Printf("Honoring notifications for %s\n", args[0])
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(ignoreCmd)
	RootCmd.AddCommand(unignoreCmd)
}
