package cmd

import (
	"fmt"

	"heartbeat/internal/activity"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(kindsCmd)
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the update kinds usable in update_types",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s %-36s %s\n", "KIND", "TARGET", "DESCRIPTION")
		fmt.Fprintln(out, "──────────────────────────────────────────────────────────────────────────")
		for _, k := range activity.ListKinds() {
			fmt.Fprintf(out, "%-8s %-36s %s\n", k.Kind, k.Target, k.Description)
		}
	},
}
