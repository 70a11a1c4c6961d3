package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"heartbeat/internal/logging"
	"heartbeat/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	workDir     string
	journalPath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "heartbeat",
	Short: "Keep a repository's data directory ticking over",
	Long: `heartbeat appends activity log lines, daily statistics and quotes under
./data on each run, trims old logs, and produces commit messages to label
the result. Point a scheduler at 'heartbeat update', or let 'heartbeat daemon'
drive it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&workDir, "dir", "", "working directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", "", "sqlite run journal path (empty disables the journal)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveDir() (string, error) {
	if workDir != "" {
		return filepath.Abs(workDir)
	}
	return os.Getwd()
}

func newLogger() (*zap.Logger, error) {
	logger, err := logging.New(logLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// openJournal returns nil when no journal is configured.
func openJournal(dir string) (*store.Store, error) {
	if journalPath == "" {
		return nil, nil
	}
	path := journalPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return store.New(path)
}
