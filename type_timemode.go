package tourney

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/tourney/date"
)

// ErrUnknownTimeMode is returned when parsing an unsupported time mode.
var ErrUnknownTimeMode = errors.New("unknown time mode")

// TimeMode selects how ByTime buckets records.
type TimeMode int

const (
	NoTime TimeMode = iota // a single bucket for all records
	ByDay
	ByWeek
	ByMonth
)

// TimeModes lists the valid modes in their CLI spelling.
var TimeModes = []string{"none", "day", "week", "month"}

func (m TimeMode) String() string {
	switch m {
	case NoTime:
		return "none"
	case ByDay:
		return "day"
	case ByWeek:
		return "week"
	case ByMonth:
		return "month"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// period returns the calendar period of a mode, ok is false for NoTime and unknown modes.
func (m TimeMode) period() (p date.Period, ok bool) {
	switch m {
	case ByDay:
		return date.Daily, true
	case ByWeek:
		return date.Weekly, true
	case ByMonth:
		return date.Monthly, true
	default:
		return date.Daily, false
	}
}

// ParseTimeMode parses one of "none", "day", "week" or "month".
func ParseTimeMode(s string) (TimeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoTime, nil
	case "day":
		return ByDay, nil
	case "week":
		return ByWeek, nil
	case "month":
		return ByMonth, nil
	default:
		return NoTime, fmt.Errorf("%w %q, want one of %s", ErrUnknownTimeMode, s, strings.Join(TimeModes, ", "))
	}
}
