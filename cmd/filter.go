package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/tourney"
	"github.com/etnz/tourney/date"
)

// filterFlags are the selection flags shared by the reporting subcommands.
type filterFlags struct {
	from, to string
	room     string
	format   string
	currency string
}

func (c *filterFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Only tournaments played on or after this date (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "Only tournaments played on or before this date (YYYY-MM-DD)")
	f.StringVar(&c.room, "room", "", "Only tournaments of this room (case insensitive)")
	f.StringVar(&c.format, "format", "", "Only tournaments of this format, like MTT, SnG or PKO (case insensitive)")
	f.StringVar(&c.currency, "currency", "", "Only tournaments in this currency (case insensitive)")
}

// filter builds the filter. Invalid dates are an error.
func (c *filterFlags) filter() (tourney.Filter, error) {
	f := tourney.Filter{Room: c.room, Format: c.format, Currency: c.currency}
	var err error
	if c.from != "" {
		if f.Range.From, err = date.Parse(c.from); err != nil {
			return f, fmt.Errorf("invalid -from: %w", err)
		}
	}
	if c.to != "" {
		if f.Range.To, err = date.Parse(c.to); err != nil {
			return f, fmt.Errorf("invalid -to: %w", err)
		}
	}
	return f, nil
}
