package activity

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"heartbeat/internal/chance"
	"heartbeat/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, time.October, 15, 10, 30, 0, 0, time.Local)

func newTestUpdater(t *testing.T, cfgJSON string, src chance.Source) *Updater {
	t.Helper()
	root := t.TempDir()
	if cfgJSON != "" {
		path := filepath.Join(root, "config", "activity_config.json")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(cfgJSON), 0644))
	}
	u := NewUpdater(root, config.DefaultPaths, zap.NewNop())
	u.Rand = src
	u.Now = func() time.Time { return testNow }
	return u
}

// listFiles returns every regular file under dir, relative to it.
func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(dir, path)
			files = append(files, rel)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestRun_Disabled(t *testing.T) {
	u := newTestUpdater(t, `{"enabled": false}`, &chance.Scripted{Floats: []float64{0.99}})

	report, err := u.Run()
	require.NoError(t, err)
	assert.Equal(t, OutcomeDisabled, report.Outcome)
	assert.Empty(t, report.Performed)
	assert.Empty(t, listFiles(t, u.Layout.DataDir()))
}

func TestRun_SkipGate(t *testing.T) {
	tests := []struct {
		name string
		draw float64
		want Outcome
	}{
		{"just below threshold", 0.399, OutcomeSkipped},
		{"at threshold", 0.40, OutcomeCompleted},
		{"well above", 0.95, OutcomeCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUpdater(t, `{"update_types": ["quote"]}`, &chance.Scripted{Floats: []float64{tt.draw}})
			report, err := u.Run()
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Outcome)
			if tt.want == OutcomeSkipped {
				assert.Empty(t, listFiles(t, u.Layout.DataDir()))
			}
		})
	}
}

func TestRun_OnlyLog(t *testing.T) {
	u := newTestUpdater(t,
		`{"enabled": true, "update_types": ["log"], "max_changes_per_run": 1}`,
		// sample index 0, then the third activity
		&chance.Scripted{Floats: []float64{0.5}, Ints: []int{0, 2}},
	)

	report, err := u.Run()
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, report.Outcome)
	assert.Equal(t, []Kind{KindLog}, report.Performed)
	assert.Equal(t, "config/activity_config.json", report.ConfigPath)

	data, err := os.ReadFile(u.Layout.DailyLog(testNow))
	require.NoError(t, err)
	assert.Equal(t, "[2026-10-15 10:30:00] Documentation updates\n", string(data))

	assert.Equal(t, []string{filepath.Join("logs", "activity_2026-10-15.log")}, listFiles(t, u.Layout.DataDir()))
}

func TestRun_AppendsToExistingLog(t *testing.T) {
	u := newTestUpdater(t, `{"update_types": ["log"]}`, &chance.Scripted{Floats: []float64{0.9, 0.9}})

	_, err := u.Run()
	require.NoError(t, err)
	_, err = u.Run()
	require.NoError(t, err)

	data, err := os.ReadFile(u.Layout.DailyLog(testNow))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
}

func TestRun_DefaultsWithoutConfig(t *testing.T) {
	u := newTestUpdater(t, "", &chance.Scripted{
		Floats: []float64{0.5},
		// k=3 (index 2), then sample picks index 0 each time
		Ints: []int{2, 0, 0, 0},
	})

	require.NoError(t, u.Layout.EnsureDirectories())
	for i := 0; i < 370; i++ {
		day := testNow.AddDate(0, 0, -(i + 1))
		require.NoError(t, os.WriteFile(u.Layout.DailyLog(day), []byte("x\n"), 0644))
	}

	report, err := u.Run()
	require.NoError(t, err)
	assert.Empty(t, report.ConfigPath)
	assert.Equal(t, []string{"log", "stats", "quote"}, report.Selected)
	assert.Equal(t, []Kind{KindLog, KindStats, KindQuote}, report.Performed)

	// 370 old logs plus today's; default retention keeps 365
	assert.Len(t, report.Cleaned, 6)
	entries, err := os.ReadDir(u.Layout.LogsDir())
	require.NoError(t, err)
	assert.Len(t, entries, 365)
	assert.FileExists(t, u.Layout.DailyLog(testNow))
}

func TestRun_CleanupDisabled(t *testing.T) {
	u := newTestUpdater(t,
		`{"update_types": ["quote"], "maintenance": {"cleanup_old_logs": false, "max_log_entries": 1}}`,
		&chance.Scripted{Floats: []float64{0.5}},
	)
	require.NoError(t, u.Layout.EnsureDirectories())
	for i := 1; i <= 3; i++ {
		require.NoError(t, os.WriteFile(u.Layout.DailyLog(testNow.AddDate(0, 0, -i)), nil, 0644))
	}

	report, err := u.Run()
	require.NoError(t, err)
	assert.Empty(t, report.Cleaned)

	entries, err := os.ReadDir(u.Layout.LogsDir())
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRun_UnknownKindIgnored(t *testing.T) {
	u := newTestUpdater(t,
		`{"update_types": ["deploy"], "max_changes_per_run": 1}`,
		&chance.Scripted{Floats: []float64{0.5}},
	)

	report, err := u.Run()
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, report.Outcome)
	assert.Equal(t, []string{"deploy"}, report.Selected)
	assert.Empty(t, report.Performed)
}

func TestRun_EmptyUpdateTypes(t *testing.T) {
	u := newTestUpdater(t, `{"update_types": []}`, &chance.Scripted{Floats: []float64{0.5}})

	report, err := u.Run()
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, report.Outcome)
	assert.Empty(t, report.Selected)
}

func TestRun_UnwritableStats(t *testing.T) {
	u := newTestUpdater(t, `{"update_types": ["stats"]}`, &chance.Scripted{Floats: []float64{0.5}})
	require.NoError(t, u.Layout.EnsureDirectories())
	// a directory where the stats file should be cannot be read as a file
	require.NoError(t, os.MkdirAll(u.Layout.StatsFile(), 0755))

	report, err := u.Run()
	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, report.Outcome)
	assert.Contains(t, err.Error(), "stats update")
}

func TestRun_SkipRate(t *testing.T) {
	u := newTestUpdater(t,
		`{"update_types": ["log"], "maintenance": {"cleanup_old_logs": false}}`,
		rand.New(rand.NewPCG(2026, 10)),
	)

	const trials = 4000
	ran := 0
	for i := 0; i < trials; i++ {
		report, err := u.Run()
		require.NoError(t, err)
		if len(report.Performed) > 0 {
			ran++
		}
	}
	assert.InDelta(t, 0.60, float64(ran)/trials, 0.04)
}

func TestSelectKinds_Bounds(t *testing.T) {
	src := rand.New(rand.NewPCG(5, 8))
	all := []string{"log", "stats", "quote"}

	tests := []struct {
		name       string
		kinds      []string
		maxChanges int
		wantMax    int
	}{
		{"cap above pool", all, 5, 3},
		{"cap equals pool", all, 3, 3},
		{"cap below pool", all, 2, 2},
		{"cap of one", all, 1, 1},
		{"zero cap counts as one", all, 0, 1},
		{"single kind", []string{"stats"}, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizes := map[int]bool{}
			for i := 0; i < 1000; i++ {
				got := SelectKinds(src, tt.kinds, tt.maxChanges)
				require.GreaterOrEqual(t, len(got), 1)
				require.LessOrEqual(t, len(got), tt.wantMax)
				seen := map[string]bool{}
				for _, k := range got {
					require.Contains(t, tt.kinds, k)
					require.False(t, seen[k], "duplicate kind %q", k)
					seen[k] = true
				}
				sizes[len(got)] = true
			}
			assert.Len(t, sizes, tt.wantMax, "every count in range should occur")
		})
	}

	assert.Nil(t, SelectKinds(src, nil, 3))
}

func TestListKinds(t *testing.T) {
	kinds := ListKinds()
	require.Len(t, kinds, 3)
	assert.Equal(t, KindLog, kinds[0].Kind)

	p, ok := GetKind("stats")
	assert.True(t, ok)
	assert.Equal(t, KindStats, p.Kind)

	_, ok = GetKind("deploy")
	assert.False(t, ok)
}
