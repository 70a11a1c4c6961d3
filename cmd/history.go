package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of runs to show")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs from the journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if journalPath == "" {
			return fmt.Errorf("no journal configured — pass --journal <path>")
		}
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		st, err := openJournal(dir)
		if err != nil {
			return err
		}
		defer st.Close()

		runs, err := st.ListRuns(historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs yet — run 'heartbeat update --journal ...' first")
			return nil
		}

		fmt.Fprintf(out, "%-20s %-10s %-18s %-8s %s\n", "STARTED", "OUTCOME", "PERFORMED", "CLEANED", "ERROR")
		fmt.Fprintln(out, "─────────────────────────────────────────────────────────────────")
		for _, r := range runs {
			performed := strings.Join(r.Performed, ",")
			if performed == "" {
				performed = "-"
			}
			fmt.Fprintf(out, "%-20s %-10s %-18s %-8d %s\n",
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				r.Outcome,
				performed,
				r.Cleaned,
				truncate(r.Error, 60),
			)
		}

		counts, err := st.CountByOutcome()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d completed, %d skipped, %d disabled, %d failed\n",
			counts["completed"], counts["skipped"], counts["disabled"], counts["failed"])
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
