package activity

import (
	"fmt"
	"strings"
	"time"

	"heartbeat/internal/chance"
	"heartbeat/internal/config"

	"go.uber.org/zap"
)

// SkipProbability is the chance that an enabled run does nothing at all.
const SkipProbability = 0.40

type Outcome string

const (
	OutcomeDisabled  Outcome = "disabled"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
)

// Report describes what a single run did.
type Report struct {
	StartedAt  time.Time
	Outcome    Outcome
	ConfigPath string
	Selected   []string
	Performed  []Kind
	Cleaned    []string
}

type Updater struct {
	Layout      Layout
	ConfigPaths []string
	Rand        chance.Source
	Now         func() time.Time
	Logger      *zap.Logger
}

func NewUpdater(root string, configPaths []string, logger *zap.Logger) *Updater {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Updater{
		Layout:      Layout{Root: root},
		ConfigPaths: configPaths,
		Rand:        chance.New(),
		Now:         time.Now,
		Logger:      logger,
	}
}

func (u *Updater) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

// Run performs one update pass. The returned report is always populated, even
// when err is non-nil.
func (u *Updater) Run() (Report, error) {
	report := Report{StartedAt: u.now()}

	if err := u.Layout.EnsureDirectories(); err != nil {
		report.Outcome = OutcomeFailed
		return report, err
	}

	cfg, path := config.Load(u.Layout.Root, u.ConfigPaths, u.Logger)
	report.ConfigPath = path

	if !cfg.Enabled {
		u.Logger.Info("Auto-commit activity is disabled in config")
		report.Outcome = OutcomeDisabled
		return report, nil
	}

	if u.Rand.Float64() < SkipProbability {
		u.Logger.Info("Randomly skipping this run to maintain natural variance")
		report.Outcome = OutcomeSkipped
		return report, nil
	}

	report.Selected = SelectKinds(u.Rand, cfg.UpdateTypes, cfg.MaxChangesPerRun)
	for _, name := range report.Selected {
		kind := Kind(name)
		var err error
		switch kind {
		case KindLog:
			err = u.updateDailyLog()
		case KindStats:
			err = u.updateStats()
		case KindQuote:
			err = u.updateQuotes()
		default:
			u.Logger.Warn("Unknown update type, skipping", zap.String("type", name))
			continue
		}
		if err != nil {
			report.Outcome = OutcomeFailed
			return report, fmt.Errorf("%s update: %w", kind, err)
		}
		report.Performed = append(report.Performed, kind)
	}

	if cfg.Maintenance.CleanupOldLogs {
		removed, err := CleanupOldLogs(u.Layout.LogsDir(), cfg.Maintenance.MaxLogEntries)
		if err != nil {
			report.Outcome = OutcomeFailed
			return report, err
		}
		for _, name := range removed {
			u.Logger.Info("Cleaned up old log", zap.String("file", name))
		}
		report.Cleaned = removed
	}

	report.Outcome = OutcomeCompleted
	u.Logger.Info("Activity update completed", zap.String("performed", joinKinds(report.Performed)))
	return report, nil
}

// SelectKinds draws k uniformly from [1, min(maxChanges, len(kinds))] and then
// k distinct kinds without replacement. maxChanges below one counts as one.
func SelectKinds(src chance.Source, kinds []string, maxChanges int) []string {
	limit := max(maxChanges, 1)
	limit = min(limit, len(kinds))
	if limit == 0 {
		return nil
	}
	return chance.Sample(src, kinds, chance.Between(src, 1, limit))
}

func joinKinds(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
