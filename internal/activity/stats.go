package activity

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// StatsRetentionDays is how far back the statistics file reaches.
const StatsRetentionDays = 30

const lastUpdatedLayout = "2006-01-02T15:04:05.000000"

type StatsRecord struct {
	Commits      int    `json:"commits"`
	LinesAdded   int    `json:"lines_added"`
	LinesRemoved int    `json:"lines_removed"`
	FilesChanged int    `json:"files_changed"`
	LastUpdated  string `json:"last_updated"`
}

// Stats maps a YYYY-MM-DD date to that day's record.
type Stats map[string]StatsRecord

// LoadStats reads the statistics file. A missing file yields an empty map.
// A file that does not decode also yields an empty map, with corrupt set.
func LoadStats(path string) (stats Stats, corrupt bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Stats{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read stats: %w", err)
	}

	if err := json.Unmarshal(data, &stats); err != nil || stats == nil {
		return Stats{}, true, nil
	}
	return stats, false, nil
}

// Prune drops every entry dated before now minus StatsRetentionDays, and
// every key that is not a date.
func (s Stats) Prune(now time.Time) {
	cutoff := now.AddDate(0, 0, -StatsRetentionDays).Format(dateLayout)
	for day := range s {
		if _, err := time.Parse(dateLayout, day); err != nil || day < cutoff {
			delete(s, day)
		}
	}
}

// SaveStats writes stats as indented JSON through a temp file and rename, so
// readers never observe a half-written file.
func SaveStats(path string, stats Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".stats-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp stats: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write stats: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close stats: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod stats: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace stats: %w", err)
	}
	return nil
}
