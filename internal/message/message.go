package message

import (
	"strings"
	"time"

	"heartbeat/internal/chance"
)

const datePlaceholder = "{date}"

var Templates = []string{
	"Update activity log - {date}",
	"Daily maintenance - {date}",
	"Routine update {date}",
	"Activity tracking update",
	"Daily system check - {date}",
	"Repository maintenance {date}",
	"Update daily metrics",
	"Activity log refresh - {date}",
	"Routine data update",
	"Daily activity tracking",
	"System update - {date}",
	"Maintenance routine completed",
	"Activity statistics update",
	"Daily log entry - {date}",
}

// DateLayouts are the ways a date can appear in a message: ISO, short month
// and day, slashed, and US order.
var DateLayouts = []string{
	"2006-01-02",
	"Jan 02",
	"2006/01/02",
	"01-02-2006",
}

// Generate returns a commit message for a change made at now.
func Generate(src chance.Source, now time.Time) string {
	tmpl := chance.Pick(src, Templates)
	if !strings.Contains(tmpl, datePlaceholder) {
		return tmpl
	}

	dates := make([]string, len(DateLayouts))
	for i, layout := range DateLayouts {
		dates[i] = now.Format(layout)
	}
	return strings.ReplaceAll(tmpl, datePlaceholder, chance.Pick(src, dates))
}
