package tourney

import (
	"strings"

	"github.com/etnz/tourney/date"
)

// Filter selects records. A zero field imposes no constraint.
type Filter struct {
	Range    date.Range // inclusive on both ends
	Room     string
	Format   string
	Currency string
}

// AcceptAll is a predicate that accepts every record.
func AcceptAll(Record) bool { return true }

// InRange returns a predicate that accepts records played within r.
func InRange(r date.Range) func(Record) bool {
	return func(rec Record) bool { return r.Contains(rec.Date) }
}

// WithRoom returns a predicate that accepts records from room, ignoring case.
func WithRoom(room string) func(Record) bool {
	return func(rec Record) bool { return strings.EqualFold(rec.Room, room) }
}

// WithFormat returns a predicate that accepts records of format, ignoring case.
func WithFormat(format string) func(Record) bool {
	return func(rec Record) bool { return strings.EqualFold(rec.Format, format) }
}

// WithCurrency returns a predicate that accepts records in currency, ignoring case.
func WithCurrency(currency string) func(Record) bool {
	return func(rec Record) bool { return strings.EqualFold(rec.Currency, currency) }
}

// Predicate combines all the criteria set in f.
func (f Filter) Predicate() func(Record) bool {
	var preds []func(Record) bool
	if !f.Range.IsOpen() {
		preds = append(preds, InRange(f.Range))
	}
	if f.Room != "" {
		preds = append(preds, WithRoom(f.Room))
	}
	if f.Format != "" {
		preds = append(preds, WithFormat(f.Format))
	}
	if f.Currency != "" {
		preds = append(preds, WithCurrency(f.Currency))
	}
	if len(preds) == 0 {
		return AcceptAll
	}
	return func(rec Record) bool {
		for _, accept := range preds {
			if !accept(rec) {
				return false
			}
		}
		return true
	}
}

// Accept reports whether rec matches every criterion of f.
func (f Filter) Accept(rec Record) bool { return f.Predicate()(rec) }

// Select returns the records matching f, in their original order.
func Select(records []Record, f Filter) []Record {
	return SelectFunc(records, f.Predicate())
}

// SelectFunc returns the records accepted by predicate, in their original order.
func SelectFunc(records []Record, predicate func(Record) bool) []Record {
	selected := make([]Record, 0, len(records))
	for _, rec := range records {
		if predicate(rec) {
			selected = append(selected, rec)
		}
	}
	return selected
}
