package tourney

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/tourney/date"
	"github.com/shopspring/decimal"
)

// Column names of the ledger, in store order.
const (
	ColDate     = "date"
	ColRoom     = "room"
	ColName     = "name"
	ColBuyIn    = "buy_in"
	ColRake     = "rake"
	ColCurrency = "currency"
	ColResult   = "result"
	ColPlace    = "place"
	ColPlayers  = "players"
	ColFormat   = "format"
	ColNotes    = "notes"
)

// Columns lists every column of the ledger in the order they are written.
var Columns = []string{
	ColDate, ColRoom, ColName, ColBuyIn, ColRake, ColCurrency,
	ColResult, ColPlace, ColPlayers, ColFormat, ColNotes,
}

// DefaultCurrency is the currency of a record that does not declare one.
const DefaultCurrency = "USD"

// ErrInvalidDate is returned when a record date cannot be parsed.
var ErrInvalidDate = errors.New("invalid tournament date")

// Record is one played tournament.
//
// Records are values: they are built once, by NewRecord or by the caller,
// and never modified afterwards.
type Record struct {
	Date     date.Date
	Room     string
	Name     string
	BuyIn    decimal.Decimal // excluding rake
	Rake     decimal.Decimal
	Currency string
	Result   decimal.Decimal // total cash returned, 0 if no payout
	Place    int             // 0 when unknown
	Players  int
	Format   string // free form: MTT, SnG, PKO...
	Notes    string
}

// TotalCost is the price paid to enter the tournament.
func (r Record) TotalCost() decimal.Decimal { return r.BuyIn.Add(r.Rake) }

// Profit is the net result of the tournament.
func (r Record) Profit() decimal.Decimal { return r.Result.Sub(r.TotalCost()) }

// IsITM reports whether the tournament paid anything ("in the money").
func (r Record) IsITM() bool { return r.Result.IsPositive() }

// NewRecord builds a Record from raw ledger fields keyed by column name.
//
// The date is mandatory: a missing or malformed date returns an error
// wrapping ErrInvalidDate. Any other field is optional and never fails:
// amounts and counts that are empty, non-numeric or negative read as 0.
func NewRecord(fields map[string]string) (Record, error) {
	raw := fields[ColDate]
	on, err := date.Parse(raw)
	if err != nil {
		return Record{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, raw, err)
	}

	currency := strings.ToUpper(field(fields, ColCurrency))
	if currency == "" {
		currency = DefaultCurrency
	}

	return Record{
		Date:     on,
		Room:     field(fields, ColRoom),
		Name:     field(fields, ColName),
		BuyIn:    ParseAmount(fields[ColBuyIn]),
		Rake:     ParseAmount(fields[ColRake]),
		Currency: currency,
		Result:   ParseAmount(fields[ColResult]),
		Place:    ParseCount(fields[ColPlace]),
		Players:  ParseCount(fields[ColPlayers]),
		Format:   field(fields, ColFormat),
		Notes:    field(fields, ColNotes),
	}, nil
}

// Fields returns the raw ledger fields of r, the inverse of NewRecord.
// Amounts are written with two decimals.
func (r Record) Fields() map[string]string {
	return map[string]string{
		ColDate:     r.Date.String(),
		ColRoom:     r.Room,
		ColName:     r.Name,
		ColBuyIn:    r.BuyIn.StringFixed(2),
		ColRake:     r.Rake.StringFixed(2),
		ColCurrency: r.Currency,
		ColResult:   r.Result.StringFixed(2),
		ColPlace:    strconv.Itoa(r.Place),
		ColPlayers:  strconv.Itoa(r.Players),
		ColFormat:   r.Format,
		ColNotes:    r.Notes,
	}
}

func field(fields map[string]string, name string) string {
	return strings.TrimSpace(fields[name])
}

// ParseAmount reads a non-negative decimal amount, 0 if s is not one.
func ParseAmount(s string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// ParseCount reads a non-negative integer, 0 if s is not one.
func ParseCount(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
