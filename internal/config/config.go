package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config controls a single updater run. It is read fresh on every run.
type Config struct {
	Enabled          bool        `mapstructure:"enabled" json:"enabled"`
	UpdateTypes      []string    `mapstructure:"update_types" json:"update_types"`
	MaxChangesPerRun int         `mapstructure:"max_changes_per_run" json:"max_changes_per_run"`
	Maintenance      Maintenance `mapstructure:"maintenance" json:"maintenance"`
}

type Maintenance struct {
	CleanupOldLogs bool `mapstructure:"cleanup_old_logs" json:"cleanup_old_logs"`
	MaxLogEntries  int  `mapstructure:"max_log_entries" json:"max_log_entries"`
}

// DefaultPaths are tried in order, relative to the working directory.
var DefaultPaths = []string{
	".github/config/activity_config.json",
	"../config/activity_config.json",
	"config/activity_config.json",
}

func Default() Config {
	var cfg Config
	// decoding the defaults alone cannot fail
	_ = newViper().Unmarshal(&cfg)
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("enabled", true)
	v.SetDefault("update_types", []string{"log", "stats", "quote"})
	v.SetDefault("max_changes_per_run", 3)
	v.SetDefault("maintenance.cleanup_old_logs", true)
	v.SetDefault("maintenance.max_log_entries", 365)
	return v
}

// Load returns the first candidate that parses, merged over the defaults,
// along with the path it came from. Relative candidates resolve against dir.
// Broken candidates are logged and skipped; when none succeed the defaults
// are returned with an empty path.
func Load(dir string, candidates []string, logger *zap.Logger) (Config, string) {
	for _, p := range candidates {
		path := p
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}

		cfg, err := loadFile(path)
		if err != nil {
			logger.Warn("Invalid JSON in config file", zap.String("path", p), zap.Error(err))
			continue
		}
		return cfg, p
	}

	logger.Info("Config file not found, using defaults", zap.Strings("searched", candidates))
	return Default(), ""
}

func loadFile(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.UpdateTypes = dedupe(cfg.UpdateTypes)
	return cfg, nil
}

// dedupe keeps the first occurrence of each kind.
func dedupe(kinds []string) []string {
	seen := make(map[string]bool, len(kinds))
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// WriteDefault writes the default configuration to path. It reports false
// without touching anything when a file is already there.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
