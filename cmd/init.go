package cmd

import (
	"fmt"
	"path/filepath"

	"heartbeat/internal/activity"
	"heartbeat/internal/config"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directories and a default config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		layout := activity.Layout{Root: dir}
		if err := layout.EnsureDirectories(); err != nil {
			return fmt.Errorf("init failed: %w", err)
		}

		rel := "config/activity_config.json"
		written, err := config.WriteDefault(filepath.Join(dir, rel))
		if err != nil {
			return fmt.Errorf("init failed: %w", err)
		}

		fmt.Fprintf(out, "Initialized heartbeat in %s\n", dir)
		if written {
			fmt.Fprintf(out, "Default config written to %s\n", rel)
		} else {
			fmt.Fprintf(out, "Config already present at %s\n", rel)
		}
		return nil
	},
}
