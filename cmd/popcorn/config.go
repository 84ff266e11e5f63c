package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/popcorn/internal/adapter"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := adapter.DefaultConfig()
		path, err := adapter.SaveConfig(defaults, cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "Set api.key (or POPCORN_API_KEY) to your OMDb API key before starting popcorn.")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
