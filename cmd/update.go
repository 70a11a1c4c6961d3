package cmd

import (
	"time"

	"heartbeat/internal/activity"
	"heartbeat/internal/config"
	"heartbeat/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var updateConfig string

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateConfig, "config", "", "config file tried before the default locations")
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run one activity update pass",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		_, err = runUpdate(dir, logger)
		return err
	},
}

func configCandidates() []string {
	if updateConfig == "" {
		return config.DefaultPaths
	}
	return append([]string{updateConfig}, config.DefaultPaths...)
}

// runUpdate performs one pass and journals it when a journal is configured.
// Journal problems are logged, never returned.
func runUpdate(dir string, logger *zap.Logger) (activity.Report, error) {
	u := activity.NewUpdater(dir, configCandidates(), logger)
	report, runErr := u.Run()

	st, err := openJournal(dir)
	if err != nil {
		logger.Warn("Could not open run journal", zap.Error(err))
		return report, runErr
	}
	if st == nil {
		return report, runErr
	}
	defer st.Close()

	if _, err := st.RecordRun(journalEntry(report, runErr)); err != nil {
		logger.Warn("Could not record run", zap.Error(err))
	}
	return report, runErr
}

func journalEntry(report activity.Report, runErr error) store.Run {
	r := store.Run{
		StartedAt:  report.StartedAt,
		FinishedAt: time.Now(),
		Outcome:    string(report.Outcome),
		ConfigPath: report.ConfigPath,
		Cleaned:    len(report.Cleaned),
	}
	for _, k := range report.Performed {
		r.Performed = append(r.Performed, string(k))
	}
	if runErr != nil {
		r.Error = runErr.Error()
	}
	return r
}
