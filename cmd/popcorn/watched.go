package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/search"
	"github.com/mmcdole/popcorn/internal/store"
	"github.com/mmcdole/popcorn/internal/watchlist"
)

var exportFormat string

var watchedCmd = &cobra.Command{
	Use:   "watched",
	Short: "Print the watched list and its summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, closeStore, err := loadWatched()
		if err != nil {
			return err
		}
		defer closeStore()

		renderWatched(cmd.OutOrStdout(), entries, time.Now())
		return nil
	},
}

var watchedRmCmd = &cobra.Command{
	Use:   "rm <imdb-id|title>",
	Short: "Remove a movie from the watched list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		svc := watchlist.NewService(st, logger)
		entries, err := svc.Load()
		if err != nil {
			return err
		}

		entry, err := search.Resolve(args[0], entries)
		if err != nil {
			return err
		}
		if _, err := svc.Remove(entries, entry.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s (%s)\n", entry.Title, entry.ID)
		return nil
	},
}

var watchedExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the watched list to stdout as JSON or YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, closeStore, err := loadWatched()
		if err != nil {
			return err
		}
		defer closeStore()

		return exportWatched(cmd.OutOrStdout(), entries, exportFormat)
	},
}

func init() {
	watchedExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format (json, yaml)")
	watchedCmd.AddCommand(watchedRmCmd, watchedExportCmd)
}

// loadWatched opens the configured store and reads the list
func loadWatched() ([]domain.WatchedEntry, func(), error) {
	st, err := store.Open(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	entries, err := watchlist.NewService(st, logger).Load()
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return entries, func() { st.Close() }, nil
}

// renderWatched prints the entries as a table followed by the summary line
func renderWatched(w io.Writer, entries []domain.WatchedEntry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No watched movies yet.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "YEAR", "IMDB", "YOU", "RUNTIME", "ADDED")
	for _, e := range entries {
		added := "-"
		if e.AddedAt > 0 {
			added = humanize.RelTime(time.Unix(e.AddedAt, 0), now, "ago", "from now")
		}
		t.Row(
			e.ID,
			e.Title,
			e.Year,
			domain.FormatNumber(e.CriticRating),
			domain.FormatNumber(e.UserRating),
			domain.FormatNumber(e.RuntimeMinutes)+" min",
			added,
		)
	}
	fmt.Fprintln(w, t.Render())

	d := domain.Summarize(entries).Display()
	fmt.Fprintf(w, "%s movies · IMDb %s · you %s · %s min\n", d.Count, d.CriticRating, d.UserRating, d.Runtime)
}

// exportWatched encodes entries in the requested format
func exportWatched(w io.Writer, entries []domain.WatchedEntry, format string) error {
	if entries == nil {
		entries = []domain.WatchedEntry{}
	}
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q (want json or yaml)", format)
	}
}
