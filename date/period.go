package date

import "fmt"

// Period is a calendar bucket a date belongs to.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Key returns the identifier of the period containing d.
//
// Keys sort lexicographically in chronological order:
//   - Daily: "2006-01-02"
//   - Weekly: ISO year and week, "2006-W01"
//   - Monthly: "2006-01"
func (p Period) Key(d Date) string {
	switch p {
	case Daily:
		return d.String()
	case Weekly:
		year, week := d.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return d.Format("2006-01")
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}
