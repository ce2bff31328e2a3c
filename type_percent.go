package tourney

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a ratio expressed in percents (50 means one half).
type Percent float64

// percentOf returns part/whole*100, or 0 when whole is not positive.
func percentOf(part, whole decimal.Decimal) Percent {
	if !whole.IsPositive() {
		return 0
	}
	return Percent(part.Mul(decimal.NewFromInt(100)).Div(whole).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Fixed formats p with two decimals and no percent sign.
func (p Percent) Fixed() string {
	return fmt.Sprintf("%.2f", float64(p))
}

// Round returns p rounded to two decimals.
func (p Percent) Round() float64 {
	return decimal.NewFromFloat(float64(p)).Round(2).InexactFloat64()
}
