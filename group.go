package tourney

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Group is a named subset of records.
type Group struct {
	Key     string
	Records []Record
}

// GroupStats is the summary of a Group.
type GroupStats struct {
	Key string `json:"key"`
	Stats
}

// UnknownFormat is the key of records with no format.
const UnknownFormat = "UNKNOWN"

// AllKey is the key of the single group ByTime returns when not bucketing.
const AllKey = "ALL"

// Bracket is a buy-in range, lower bound included, upper bound excluded.
type Bracket struct {
	Label string
	Min   decimal.Decimal
	Max   decimal.Decimal // zero for the unbounded top bracket
}

// Brackets are the buy-in ranges used by ByBuyIn, in ascending order.
// They are contiguous and cover every non-negative amount.
var Brackets = []Bracket{
	{Label: "0–5", Min: decimal.Zero, Max: decimal.NewFromInt(5)},
	{Label: "5–11", Min: decimal.NewFromInt(5), Max: decimal.NewFromInt(11)},
	{Label: "11–33", Min: decimal.NewFromInt(11), Max: decimal.NewFromInt(33)},
	{Label: "33+", Min: decimal.NewFromInt(33)},
}

// Contains reports whether buyIn falls in b.
func (b Bracket) Contains(buyIn decimal.Decimal) bool {
	if b.Max.IsZero() {
		return buyIn.GreaterThanOrEqual(b.Min)
	}
	return buyIn.GreaterThanOrEqual(b.Min) && buyIn.LessThan(b.Max)
}

// BracketOf returns the index in Brackets of the bracket holding buyIn.
// Amounts below every bracket fall in the first one.
func BracketOf(buyIn decimal.Decimal) int {
	for i, b := range Brackets {
		if b.Contains(buyIn) {
			return i
		}
	}
	return 0
}

// ByFormat groups records by format, in the order formats are first seen.
// Records without a format are grouped under UnknownFormat.
func ByFormat(records []Record) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, r := range records {
		key := strings.TrimSpace(r.Format)
		if key == "" {
			key = UnknownFormat
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// ByBuyIn groups records by buy-in bracket.
//
// It always returns one group per bracket, in the order of Brackets, even
// when empty: every record lands in exactly one of them. Use NonEmpty to drop
// the empty ones.
func ByBuyIn(records []Record) []Group {
	groups := make([]Group, len(Brackets))
	for i, b := range Brackets {
		groups[i].Key = b.Label
	}
	for _, r := range records {
		i := BracketOf(r.BuyIn)
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// ByTime groups records by calendar period, sorted by key.
//
// With NoTime it returns a single AllKey group holding every record.
// A mode with no calendar period keys every record AllKey.
func ByTime(records []Record, mode TimeMode) []Group {
	if mode == NoTime {
		return []Group{{Key: AllKey, Records: records}}
	}
	period, ok := mode.period()

	var groups []Group
	index := make(map[string]int)
	for _, r := range records {
		key := AllKey
		if ok {
			key = period.Key(r.Date)
		}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	slices.SortFunc(groups, func(a, b Group) int { return strings.Compare(a.Key, b.Key) })
	return groups
}

// Len returns the number of records in g.
func (g Group) Len() int { return len(g.Records) }

// Len returns the number of records summarized in g.
func (g GroupStats) Len() int { return g.Count }

// NonEmpty returns the groups, or their summaries, that hold at least one record.
func NonEmpty[G interface{ Len() int }](groups []G) []G {
	return slices.DeleteFunc(slices.Clone(groups), func(g G) bool { return g.Len() == 0 })
}

// Summaries summarizes each group, in order.
func Summaries(groups []Group) []GroupStats {
	stats := make([]GroupStats, len(groups))
	for i, g := range groups {
		stats[i] = GroupStats{Key: g.Key, Stats: Summarize(g.Records)}
	}
	return stats
}
