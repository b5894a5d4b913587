package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BoD/a/internal/store"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Hide an item from the list",
	Long: `Hide the item entirely and erase its usage history. The item is not
uninstalled; it simply stops appearing until undeleted.`,
	Example: `  alauncher delete shortcut/compose-mail`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := st.Delete(args[0]); err != nil {
				return fmt.Errorf("failed to delete: %w", err)
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		})
	},
}

var undeleteCmd = &cobra.Command{
	Use:   "undelete <item-id>",
	Short: "Show a deleted item again",
	Long: `Remove the deleted mark. The item reappears with a clean usage
history; its pre-deletion launches stay erased.`,
	Example: `  alauncher undelete shortcut/compose-mail`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := st.Undelete(args[0]); err != nil {
				return fmt.Errorf("failed to undelete: %w", err)
			}
			fmt.Printf("Undeleted %s\n", args[0])
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(undeleteCmd)
}
