package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <item-id>",
	Short: "Record a launch of an item",
	Long: `Append one launch event for the item to the usage history. The two
scoring windows slide forward; once the long window holds 600 events the
oldest one falls off.`,
	Example: `  # Record an application launch
  alauncher record org.mozilla.firefox/Main

  # Record a shortcut launch
  alauncher record shortcut/compose-mail`,
	Args: cobra.ExactArgs(1),
	RunE: runRecord,
}

func init() {
	RootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.RecordLaunch(args[0]); err != nil {
		return fmt.Errorf("failed to record launch: %w", err)
	}

	fmt.Printf("Recorded launch of %s\n", args[0])
	return nil
}
