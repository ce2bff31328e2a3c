package renderer

import (
	"strings"
	"text/template"

	"github.com/etnz/tourney"
	"github.com/shopspring/decimal"
)

var funcs = template.FuncMap{
	"money":  money,
	"pct":    func(p tourney.Percent) string { return p.String() },
	"cell":   cell,
	"groups": newGroupTable,
}

// money formats an amount with two decimals.
func money(d decimal.Decimal) string { return d.StringFixed(2) }

// cell escapes text for use in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// groupTable is the data of the groups.md partial.
type groupTable struct {
	Title  string
	Groups []tourney.GroupStats
}

func newGroupTable(title string, groups []tourney.GroupStats) groupTable {
	return groupTable{Title: title, Groups: groups}
}

func seriesTitle(m tourney.Metric) string {
	if m == tourney.BankrollMetric {
		return "Bankroll"
	}
	return "Cumulative Profit"
}
