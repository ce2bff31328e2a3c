package date

// Range represents a range of dates, boundaries included.
// A zero From or To leaves that side of the range open.
//
// An inverted range (From after To) contains no date.
type Range struct{ From, To Date }

// NewRange creates a new date range.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// IsOpen reports whether the range imposes no constraint at all.
func (r Range) IsOpen() bool { return r.From.IsZero() && r.To.IsZero() }
