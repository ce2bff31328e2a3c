package tourney

import (
	"errors"
	"testing"

	"github.com/etnz/tourney/date"
)

func TestCumulative(t *testing.T) {
	records := []Record{
		rec("2025-01-03", 10, 1, 50), // +39
		rec("2025-01-01", 10, 1, 0),  // -11
		rec("2025-01-02", 5, 0, 0),   // -5
		rec("2025-01-01", 2, 0, 4),   // +2, same day as the second one
	}
	testCases := []struct {
		name  string
		start float64
		want  []float64
	}{
		{name: "profit", start: 0, want: []float64{-11, -9, -14, 25}},
		{name: "bankroll", start: 100, want: []float64{89, 91, 86, 125}},
	}
	wantDates := []string{"2025-01-01", "2025-01-01", "2025-01-02", "2025-01-03"}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			points := Cumulative(records, D(tc.start))
			if len(points) != len(tc.want) {
				t.Fatalf("Cumulative() returned %d points, want %d", len(points), len(tc.want))
			}
			for i, p := range points {
				if p.Date != date.MustParse(wantDates[i]) || !p.Value.Equal(D(tc.want[i])) {
					t.Errorf("point %d = (%v, %v), want (%v, %v)", i, p.Date, p.Value, wantDates[i], tc.want[i])
				}
			}
		})
	}
	if records[0].Date != date.MustParse("2025-01-03") {
		t.Error("Cumulative() must not reorder its input")
	}
}

func TestMetric_Start(t *testing.T) {
	start, err := ProfitMetric.Start(nil)
	if err != nil || !start.IsZero() {
		t.Errorf("ProfitMetric.Start(nil) = %v, %v, want 0, nil", start, err)
	}

	if _, err := BankrollMetric.Start(nil); !errors.Is(err, ErrMissingBankroll) {
		t.Errorf("BankrollMetric.Start(nil) error = %v, want ErrMissingBankroll", err)
	}

	bankroll := D(250)
	start, err = BankrollMetric.Start(&bankroll)
	if err != nil || !start.Equal(bankroll) {
		t.Errorf("BankrollMetric.Start(250) = %v, %v, want 250, nil", start, err)
	}
}

func TestParseMetric(t *testing.T) {
	for _, m := range []Metric{ProfitMetric, BankrollMetric} {
		got, err := ParseMetric(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMetric(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMetric("roi"); !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("ParseMetric(\"roi\") error = %v, want ErrUnknownMetric", err)
	}
}
