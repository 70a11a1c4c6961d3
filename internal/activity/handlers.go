package activity

import (
	"fmt"
	"strings"

	"heartbeat/internal/chance"

	"go.uber.org/zap"
)

func (u *Updater) updateDailyLog() error {
	now := u.now()
	act := chance.Pick(u.Rand, Activities)

	line := fmt.Sprintf("[%s] %s", now.Format(timestampLayout), act)
	if err := appendLine(u.Layout.DailyLog(now), line); err != nil {
		return err
	}

	u.Logger.Info("Updated daily log", zap.String("activity", act))
	return nil
}

func (u *Updater) updateStats() error {
	now := u.now()
	path := u.Layout.StatsFile()

	stats, corrupt, err := LoadStats(path)
	if err != nil {
		return err
	}
	if corrupt {
		u.Logger.Info("Statistics file unreadable, starting fresh", zap.String("path", path))
	}

	today := now.Format(dateLayout)
	rec := stats[today]
	rec.Commits++
	rec.LinesAdded = chance.Between(u.Rand, minLinesAdded, maxLinesAdded)
	rec.LinesRemoved = chance.Between(u.Rand, minLinesRemoved, maxLinesRemoved)
	rec.FilesChanged = chance.Between(u.Rand, minFilesChanged, maxFilesChanged)
	rec.LastUpdated = now.Format(lastUpdatedLayout)
	stats[today] = rec

	stats.Prune(now)
	if err := SaveStats(path, stats); err != nil {
		return err
	}

	u.Logger.Info("Updated stats", zap.Int("commits_today", rec.Commits))
	return nil
}

func (u *Updater) updateQuotes() error {
	now := u.now()
	quote := chance.Pick(u.Rand, Quotes)

	line := fmt.Sprintf("[%s] %s", now.Format(timestampLayout), quote)
	if err := appendLine(u.Layout.QuotesFile(), line); err != nil {
		return err
	}

	text, _, _ := strings.Cut(quote, " - ")
	u.Logger.Info("Updated quotes", zap.String("quote", text))
	return nil
}
