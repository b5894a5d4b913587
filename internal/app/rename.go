package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BoD/a/internal/store"
)

var renameCmd = &cobra.Command{
	Use:   "rename <item-id> <label>",
	Short: "Give an item a custom label",
	Long: `Set a custom label for the item. Search matches the custom label
instead of the native one. Renaming again replaces the previous custom
label.`,
	Example: `  alauncher rename org.mozilla.firefox/Main Browser`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := st.Rename(args[0], args[1]); err != nil {
				return fmt.Errorf("failed to rename: %w", err)
			}
			fmt.Printf("Renamed %s to %q\n", args[0], args[1])
			return nil
		})
	},
}

var unrenameCmd = &cobra.Command{
	Use:     "unrename <item-id>",
	Short:   "Restore an item's native label",
	Example: `  alauncher unrename org.mozilla.firefox/Main`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := st.Unrename(args[0]); err != nil {
				return fmt.Errorf("failed to unrename: %w", err)
			}
			fmt.Printf("Restored native label of %s\n", args[0])
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(renameCmd)
	RootCmd.AddCommand(unrenameCmd)
}
