package tourney

import "github.com/shopspring/decimal"

// Stats summarizes the financial performance of a set of tournaments.
type Stats struct {
	Count       int             `json:"count"`
	ITMCount    int             `json:"itm_count"`
	TotalBuyIn  decimal.Decimal `json:"total_buy_in"`
	TotalRake   decimal.Decimal `json:"total_rake"`
	TotalCost   decimal.Decimal `json:"total_cost"` // TotalBuyIn + TotalRake
	TotalResult decimal.Decimal `json:"total_result"`
	Profit      decimal.Decimal `json:"profit"`  // TotalResult - TotalCost
	ITMPercent  Percent         `json:"itm_pct"` // 0 when Count is 0
	ROIPercent  Percent         `json:"roi_pct"` // 0 when TotalCost is 0
}

// Summarize computes the Stats of records.
func Summarize(records []Record) Stats {
	var s Stats
	for _, r := range records {
		s.Count++
		if r.IsITM() {
			s.ITMCount++
		}
		s.TotalBuyIn = s.TotalBuyIn.Add(r.BuyIn)
		s.TotalRake = s.TotalRake.Add(r.Rake)
		s.TotalResult = s.TotalResult.Add(r.Result)
	}
	return s.derive()
}

// Add combines the stats of two disjoint sets of records.
//
// Sums are added and ratios are recomputed from them, so that
// a.Add(b) equals the Summarize of both sets together.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Count:       s.Count + o.Count,
		ITMCount:    s.ITMCount + o.ITMCount,
		TotalBuyIn:  s.TotalBuyIn.Add(o.TotalBuyIn),
		TotalRake:   s.TotalRake.Add(o.TotalRake),
		TotalResult: s.TotalResult.Add(o.TotalResult),
	}.derive()
}

// derive computes the fields that depend on the sums.
func (s Stats) derive() Stats {
	s.TotalCost = s.TotalBuyIn.Add(s.TotalRake)
	s.Profit = s.TotalResult.Sub(s.TotalCost)
	s.ITMPercent = percentOf(decimal.NewFromInt(int64(s.ITMCount)), decimal.NewFromInt(int64(s.Count)))
	s.ROIPercent = percentOf(s.Profit, s.TotalCost)
	return s
}
