package tourney

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Report is the full summary of a selection of tournaments: overall stats,
// then breakdowns by format, by buy-in bracket and by period.
type Report struct {
	Filter   Filter       `json:"-"`
	Overall  Stats        `json:"overall"`
	ByFormat []GroupStats `json:"by_format"`
	ByBuyIn  []GroupStats `json:"by_buy_in"` // every bracket, empty ones included
	TimeMode TimeMode     `json:"-"`
	ByTime   []GroupStats `json:"by_time,omitempty"` // nil when TimeMode is NoTime
}

// NewReport summarizes the records of ledger matching f.
func NewReport(ledger *Ledger, f Filter, mode TimeMode) *Report {
	records := ledger.Select(f)
	report := &Report{
		Filter:   f,
		Overall:  Summarize(records),
		ByFormat: Summaries(ByFormat(records)),
		ByBuyIn:  Summaries(ByBuyIn(records)),
		TimeMode: mode,
	}
	if mode != NoTime {
		report.ByTime = Summaries(ByTime(records, mode))
	}
	return report
}

// IsEmpty reports whether no tournament matched.
func (r *Report) IsEmpty() bool { return r.Overall.Count == 0 }

// JSON returns the report as an indented JSON document.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(struct {
		TimeMode string `json:"time_mode"`
		*Report
	}{r.TimeMode.String(), r}, "", "  ")
}
