package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BoD/a/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the ranked launch-item list",
	Long: `Display every launch item in ranked order: usage score descending,
with ties broken by merge order. Deprioritized items sink to the bottom.`,
	Example: `  # Show the full ranked list
  alauncher list`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Filter the launch-item list",
	Long: `Display the launch items whose label contains the query, ignoring
case and accents. Application items also match on package name.`,
	Example: `  # Matches "Café Finder"
  alauncher search cafe`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(searchCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	return printSnapshot("")
}

func runSearch(cmd *cobra.Command, args []string) error {
	return printSnapshot(strings.Join(args, " "))
}

func printSnapshot(query string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	items, counters, err := buildSnapshot(cfg, st, newLogger(cfg), query)
	if err != nil {
		return err
	}

	fmt.Print(output.RenderItemTable(items, counters))
	return nil
}
