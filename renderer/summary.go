package renderer

import (
	"strings"

	"github.com/etnz/tourney"
)

// summary is the data of the summary.md template.
type summary struct {
	Filter   string
	Overall  tourney.Stats
	ByFormat []tourney.GroupStats
	ByBuyIn  []tourney.GroupStats
	Period   string
	ByTime   []tourney.GroupStats
}

func newSummary(r *tourney.Report) summary {
	s := summary{
		Filter:   describeFilter(r.Filter),
		Overall:  r.Overall,
		ByFormat: r.ByFormat,
		ByBuyIn:  tourney.NonEmpty(r.ByBuyIn),
		ByTime:   r.ByTime,
		Period:   r.TimeMode.String(),
	}
	switch r.TimeMode {
	case tourney.ByDay:
		s.Period = "Day"
	case tourney.ByWeek:
		s.Period = "Week"
	case tourney.ByMonth:
		s.Period = "Month"
	}
	return s
}

// describeFilter lists the criteria of f, or returns "" if it has none.
func describeFilter(f tourney.Filter) string {
	var parts []string
	if !f.Range.From.IsZero() {
		parts = append(parts, "from "+f.Range.From.String())
	}
	if !f.Range.To.IsZero() {
		parts = append(parts, "to "+f.Range.To.String())
	}
	if f.Room != "" {
		parts = append(parts, "room "+f.Room)
	}
	if f.Format != "" {
		parts = append(parts, "format "+f.Format)
	}
	if f.Currency != "" {
		parts = append(parts, "currency "+strings.ToUpper(f.Currency))
	}
	return strings.Join(parts, ", ")
}
