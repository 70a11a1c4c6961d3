package activity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

type datedLog struct {
	day  time.Time
	name string
}

// CleanupOldLogs keeps the maxEntries newest daily logs in dir and removes
// the rest, returning the names it removed. Files whose names do not carry a
// valid date are neither kept nor removed. Removal is best effort.
func CleanupOldLogs(dir string, maxEntries int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	var logs []datedLog
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		day, ok := parseDailyLogName(e.Name())
		if !ok {
			continue
		}
		logs = append(logs, datedLog{day: day, name: e.Name()})
	}

	if maxEntries < 0 {
		maxEntries = 0
	}
	if len(logs) <= maxEntries {
		return nil, nil
	}

	slices.SortFunc(logs, func(a, b datedLog) int {
		return b.day.Compare(a.day)
	})

	var removed []string
	for _, l := range logs[maxEntries:] {
		if err := os.Remove(filepath.Join(dir, l.name)); err != nil {
			continue
		}
		removed = append(removed, l.name)
	}
	return removed, nil
}

func parseDailyLogName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
		return time.Time{}, false
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(name, logPrefix), logSuffix)
	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
