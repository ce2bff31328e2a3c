package tourney

import (
	"github.com/etnz/tourney/date"
	"github.com/shopspring/decimal"
)

// D is a helper for test to create decimals from const
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// rec is a helper for test to create a record played on day with the given buy-in, rake and result.
func rec(day string, buyIn, rake, result float64) Record {
	return Record{
		Date:     date.MustParse(day),
		BuyIn:    D(buyIn),
		Rake:     D(rake),
		Result:   D(result),
		Currency: DefaultCurrency,
	}
}

// withFormat returns a copy of r with its format set.
func withFormat(r Record, format string) Record {
	r.Format = format
	return r
}
