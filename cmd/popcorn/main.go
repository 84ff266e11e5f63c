package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/popcorn/internal/adapter"
	"github.com/mmcdole/popcorn/internal/adapter/source"
	"github.com/mmcdole/popcorn/internal/movies"
	"github.com/mmcdole/popcorn/internal/store"
	"github.com/mmcdole/popcorn/internal/tui"
	"github.com/mmcdole/popcorn/internal/tui/components"
	"github.com/mmcdole/popcorn/internal/watchlist"
)

var (
	// Version is set at build time via -ldflags
	Version = "dev"

	// Global flags
	cfgFile  string
	logLevel string
	query    string

	// Global config and logger
	cfg    *adapter.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "popcorn",
	Short: "Search movies and keep a rated watched list from the terminal",
	Long: `popcorn searches the OMDb movie database by title, shows details for
the movie you pick and keeps a persisted list of movies you watched with your
own rating.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config init writes the defaults and must work with a broken config
		if cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}

		var err error
		cfg, err = adapter.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		logger, err = adapter.SetupLogger(&cfg.Logging)
		if err != nil {
			// Fall back to null logger if file logging fails
			logger = adapter.NullLogger()
		}
		slog.SetDefault(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("query") {
			cfg.UI.InitialQuery = query
		}
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/popcorn/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&query, "query", "q", "", "initial search query")

	rootCmd.AddCommand(versionCmd, configCmd, watchedCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "popcorn %s\n", Version)
	},
}

func runTUI() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("popcorn needs an interactive terminal; use `popcorn watched` for scripted access")
	}

	logger.Info("starting popcorn", "version", Version)

	client, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create movie client: %w", err)
	}

	st, err := store.Open(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	// Browser helpers write to the terminal the TUI owns
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	launcher := adapter.NewLauncher(cfg.UI.Browser, cfg.UI.BrowserArgs, logger)

	// Create services
	movieSvc := movies.NewService(client, logger)
	watchSvc := watchlist.NewService(st, logger)

	// Create TUI model
	model := tui.NewModel(movieSvc, watchSvc, launcher, tui.Options{
		InitialQuery: cfg.UI.InitialQuery,
		Rating: components.RatingOptions{
			MaxRating: cfg.UI.MaxRating,
			Size:      cfg.UI.StarSize,
		},
		Logger: logger,
	})

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	logger.Info("starting TUI")

	final, err := p.Run()
	if m, ok := final.(tui.Model); ok {
		m.Close()
	}
	if err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
