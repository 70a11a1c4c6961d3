package activity

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"

	logPrefix = "activity_"
	logSuffix = ".log"
)

// Layout resolves the data files under a working directory.
type Layout struct {
	Root string
}

func (l Layout) DataDir() string   { return filepath.Join(l.Root, "data") }
func (l Layout) LogsDir() string   { return filepath.Join(l.DataDir(), "logs") }
func (l Layout) StatsDir() string  { return filepath.Join(l.DataDir(), "stats") }
func (l Layout) QuotesDir() string { return filepath.Join(l.DataDir(), "quotes") }

func (l Layout) DailyLog(day time.Time) string {
	return filepath.Join(l.LogsDir(), dailyLogName(day))
}

func (l Layout) StatsFile() string {
	return filepath.Join(l.StatsDir(), "repository_stats.json")
}

func (l Layout) QuotesFile() string {
	return filepath.Join(l.QuotesDir(), "daily_quotes.txt")
}

// EnsureDirectories creates the data tree. Existing directories are fine.
func (l Layout) EnsureDirectories() error {
	for _, dir := range []string{l.DataDir(), l.LogsDir(), l.StatsDir(), l.QuotesDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

func dailyLogName(day time.Time) string {
	return logPrefix + day.Format(dateLayout) + logSuffix
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
