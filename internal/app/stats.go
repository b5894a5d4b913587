package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BoD/a/internal/output"
	"github.com/BoD/a/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <item-id>",
	Short: "Show usage statistics for an item",
	Long: `Display the item's launch counts in both scoring windows and its
combined score. The score is the long-window count plus three times the
short-window count; deprioritized items show no score at all.`,
	Example: `  alauncher stats org.mozilla.firefox/Main`,
	Args:    cobra.ExactArgs(1),
	RunE:    runStats,
}

func init() {
	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	return withStore(func(st *store.Store) error {
		stats, err := st.Stats(args[0])
		if err != nil {
			return fmt.Errorf("failed to read stats: %w", err)
		}
		fmt.Print(output.RenderItemStats(stats))
		return nil
	})
}
