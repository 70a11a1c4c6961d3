package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"heartbeat/internal/schedule"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var daemonSchedule string

func init() {
	rootCmd.AddCommand(daemonCmd)

	daemonCmd.Flags().StringVar(&daemonSchedule, "schedule", "0 0 */2 * * *", "cron spec with seconds field")
	daemonCmd.Flags().StringVar(&updateConfig, "config", "", "config file tried before the default locations")
}

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run updates on a cron schedule until interrupted",
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

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		runner := schedule.New(ctx, logger)
		id, err := runner.Add(daemonSchedule, func(context.Context) {
			if _, err := runUpdate(dir, logger); err != nil {
				logger.Error("Update run failed", zap.Error(err))
			}
		})
		if err != nil {
			return fmt.Errorf("invalid schedule %q: %w", daemonSchedule, err)
		}

		runner.Start()
		logger.Info("Waiting for next run", zap.String("schedule", daemonSchedule), zap.String("next", runner.Next(id)))

		<-ctx.Done()
		runner.Stop()
		return nil
	},
}
