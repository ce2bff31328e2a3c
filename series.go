package tourney

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/tourney/date"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownMetric is returned when parsing an unsupported metric.
	ErrUnknownMetric = errors.New("unknown metric")
	// ErrMissingBankroll is returned when the bankroll metric has no starting balance.
	ErrMissingBankroll = errors.New("bankroll metric requires a starting bankroll")
)

// Metric is the quantity tracked by a cumulative series.
type Metric int

const (
	ProfitMetric   Metric = iota // cumulated profit, starting at 0
	BankrollMetric               // balance, starting at a given bankroll
)

func (m Metric) String() string {
	switch m {
	case ProfitMetric:
		return "profit"
	case BankrollMetric:
		return "bankroll"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric parses "profit" or "bankroll".
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "profit":
		return ProfitMetric, nil
	case "bankroll":
		return BankrollMetric, nil
	default:
		return ProfitMetric, fmt.Errorf("%w %q, want profit or bankroll", ErrUnknownMetric, s)
	}
}

// Start returns the first value of a series of metric m.
//
// The profit series always starts at 0. The bankroll series starts at
// bankroll, which must be set.
func (m Metric) Start(bankroll *decimal.Decimal) (decimal.Decimal, error) {
	switch m {
	case ProfitMetric:
		return decimal.Zero, nil
	case BankrollMetric:
		if bankroll == nil {
			return decimal.Zero, ErrMissingBankroll
		}
		return *bankroll, nil
	default:
		return decimal.Zero, fmt.Errorf("%w %v", ErrUnknownMetric, m)
	}
}

// Point is one step of a cumulative series.
type Point struct {
	Date  date.Date
	Value decimal.Decimal
}

// SortByDate returns a copy of records sorted by date. Records played on the
// same day keep their relative order.
func SortByDate(records []Record) []Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int { return a.Date.Compare(b.Date) })
	return sorted
}

// Cumulative returns the running total of profits, in chronological order,
// starting from start. There is one point per record.
func Cumulative(records []Record, start decimal.Decimal) []Point {
	points := make([]Point, 0, len(records))
	value := start
	for _, r := range SortByDate(records) {
		value = value.Add(r.Profit())
		points = append(points, Point{Date: r.Date, Value: value})
	}
	return points
}
