package tourney

import (
	"testing"
)

func TestSummarize(t *testing.T) {
	// two 5$ tournaments, one cashing for 20$
	s := Summarize([]Record{rec("2025-01-01", 5, 0, 0), rec("2025-01-02", 5, 0, 20)})

	if s.Count != 2 || s.ITMCount != 1 {
		t.Errorf("Count, ITMCount = %d, %d, want 2, 1", s.Count, s.ITMCount)
	}
	if !s.ITMPercent.Equal(50) {
		t.Errorf("ITMPercent = %v, want 50.00%%", s.ITMPercent)
	}
	if !s.TotalCost.Equal(D(10)) {
		t.Errorf("TotalCost = %v, want 10", s.TotalCost)
	}
	// profit is the total result minus the total cost: 20 - 10
	if !s.Profit.Equal(D(10)) {
		t.Errorf("Profit = %v, want 10", s.Profit)
	}
	if !s.Profit.Equal(s.TotalResult.Sub(s.TotalBuyIn).Sub(s.TotalRake)) {
		t.Errorf("Profit = %v, want TotalResult - TotalBuyIn - TotalRake", s.Profit)
	}
	if !s.ROIPercent.Equal(100) {
		t.Errorf("ROIPercent = %v, want 100.00%%", s.ROIPercent)
	}
	if got := s.ROIPercent.String(); got != "100.00%" {
		t.Errorf("ROIPercent.String() = %q, want %q", got, "100.00%")
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || s.ITMCount != 0 {
		t.Errorf("Count, ITMCount = %d, %d, want 0, 0", s.Count, s.ITMCount)
	}
	if s.ITMPercent != 0 || s.ROIPercent != 0 {
		t.Errorf("ITMPercent, ROIPercent = %v, %v, want 0, 0", s.ITMPercent, s.ROIPercent)
	}
	if !s.TotalCost.IsZero() || !s.Profit.IsZero() || !s.TotalResult.IsZero() {
		t.Errorf("totals should be zero, got %+v", s)
	}
}

func TestSummarize_ZeroCost(t *testing.T) {
	// freerolls: no cost, so no ROI, whatever the result.
	s := Summarize([]Record{rec("2025-01-01", 0, 0, 0), rec("2025-01-02", 0, 0, 12.5)})
	if s.ROIPercent != 0 {
		t.Errorf("ROIPercent = %v, want 0", s.ROIPercent)
	}
	if !s.ITMPercent.Equal(50) {
		t.Errorf("ITMPercent = %v, want 50", s.ITMPercent)
	}
	if !s.Profit.Equal(D(12.5)) {
		t.Errorf("Profit = %v, want 12.5", s.Profit)
	}
}

func TestSummarize_ExactProfit(t *testing.T) {
	// amounts that are not exact in binary floating point
	records := []Record{
		rec("2025-01-01", 0.1, 0.01, 0),
		rec("2025-01-02", 0.2, 0.02, 0.7),
		rec("2025-01-03", 1.1, 0.11, 3.3),
	}
	s := Summarize(records)
	want := s.TotalResult.Sub(s.TotalBuyIn).Sub(s.TotalRake)
	if !s.Profit.Equal(want) {
		t.Errorf("Profit = %v, want TotalResult-TotalBuyIn-TotalRake = %v", s.Profit, want)
	}
	if !s.Profit.Equal(D(2.46)) {
		t.Errorf("Profit = %v, want 2.46", s.Profit)
	}
}

func TestStats_Add(t *testing.T) {
	records := sampleRecords()
	for split := 0; split <= len(records); split++ {
		got := Summarize(records[:split]).Add(Summarize(records[split:]))
		want := Summarize(records)
		if got.Count != want.Count || got.ITMCount != want.ITMCount ||
			!got.TotalCost.Equal(want.TotalCost) || !got.Profit.Equal(want.Profit) ||
			!got.ITMPercent.Equal(want.ITMPercent) || !got.ROIPercent.Equal(want.ROIPercent) {
			t.Errorf("split at %d: Add() = %+v, want %+v", split, got, want)
		}
	}
}
