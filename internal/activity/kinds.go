package activity

// Kind names a category of simulated update.
type Kind string

const (
	KindLog   Kind = "log"
	KindStats Kind = "stats"
	KindQuote Kind = "quote"
)

type KindProfile struct {
	Kind        Kind
	Description string
	Target      string
}

var Kinds = map[Kind]KindProfile{
	KindLog: {
		Kind:        KindLog,
		Description: "Append an activity line to today's log",
		Target:      "data/logs/activity_<date>.log",
	},
	KindStats: {
		Kind:        KindStats,
		Description: "Bump today's counters in the statistics file",
		Target:      "data/stats/repository_stats.json",
	},
	KindQuote: {
		Kind:        KindQuote,
		Description: "Append a quote to the quotes file",
		Target:      "data/quotes/daily_quotes.txt",
	},
}

func GetKind(name string) (KindProfile, bool) {
	p, ok := Kinds[Kind(name)]
	return p, ok
}

func ListKinds() []KindProfile {
	order := []Kind{KindLog, KindStats, KindQuote}
	var result []KindProfile
	for _, k := range order {
		result = append(result, Kinds[k])
	}
	return result
}
