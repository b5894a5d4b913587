package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/BoD/a/internal/counter"
	"github.com/BoD/a/internal/engine"
	"github.com/BoD/a/internal/output"
	"github.com/BoD/a/internal/sources"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the live ranked list",
	Long: `Run the aggregation loop in the foreground and reprint the ranked
list whenever it changes: an app entry added or removed under the apps
directory, a launch recorded, or an overlay toggled from another
terminal. Stop with Ctrl-C.`,
	Example: `  alauncher watch`,
	Args:    cobra.NoArgs,
	RunE:    runWatch,
}

func init() {
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	dir, err := sources.NewDirectoryApps(cfg.AppsDir, logger)
	if err != nil {
		return fmt.Errorf("failed to open apps directory: %w", err)
	}
	defer dir.Close()

	appSrc := sources.NewAppSource(dir, cfg.SelfPackage, cfg.Debug, logger)
	appSrc.Start()
	defer appSrc.Stop()

	shortcutSvc := sources.EmptyShortcutService{}
	shortcutSrc := sources.NewShortcutSource(shortcutSvc, appSrc.Items(), logger)
	shortcutSrc.Start()
	defer shortcutSrc.Stop()

	contactSrc := sources.NewContactSource(sources.EmptyContactsService{}, logger)
	contactSrc.Start()
	defer contactSrc.Stop()

	counters := counter.New(st, logger)

	eng := engine.New(engine.Deps{
		Store:           st,
		Counters:        counters,
		Apps:            appSrc,
		Shortcuts:       shortcutSrc,
		Contacts:        contactSrc,
		Notifications:   sources.NewNotificationSource(),
		ShortcutService: shortcutSvc,
	}, engine.Options{
		RecordDelay:   time.Duration(cfg.RecordDelayMS) * time.Millisecond,
		SettingsLabel: cfg.SettingsLabel,
		Logger:        logger,
	})
	eng.Start()
	defer eng.Stop()

	itemCh := eng.Items().Subscribe()

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	fmt.Println("Watching for changes (Ctrl-C to stop)...")
	for {
		select {
		case sig := <-sigCh:
			fmt.Printf("\nReceived signal %v, shutting down...\n", sig)
			return nil
		case <-itemCh:
			fmt.Println()
			fmt.Print(output.RenderItemTable(eng.Items().Get(), counters.Counters()))
		}
	}
}
