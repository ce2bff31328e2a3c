package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/tourney"
	"github.com/etnz/tourney/date"
	"github.com/etnz/tourney/renderer"
	"github.com/go-playground/validator/v10"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// addCmd holds the flags for the 'add' subcommand.
// Numbers are kept as strings so that invalid ones can fall back to 0.
type addCmd struct {
	date     string
	room     string
	name     string
	buyIn    string
	rake     string
	currency string
	result   string
	place    string
	players  string
	format   string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a played tournament to the ledger" }
func (*addCmd) Usage() string {
	return `tourney add -name <name> [-date <date>] [-room <room>] [-buy-in <amount>] [-rake <amount>]
            [-currency <code>] [-result <amount>] [-place <n>] [-players <n>] [-format <format>] [-notes <text>]

  Appends a tournament at the end of the ledger file, creating the file if needed.
  Room, currency and format default to $TOURNEY_ROOM, $TOURNEY_CURRENCY and $TOURNEY_FORMAT.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Date the tournament was played (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.room, "room", "", "Poker room, defaults to "+config.Room)
	f.StringVar(&c.name, "name", "", "Name of the tournament (required)")
	f.StringVar(&c.buyIn, "buy-in", "", "Buy-in, without the rake")
	f.StringVar(&c.rake, "rake", "", "Rake paid to the room")
	f.StringVar(&c.currency, "currency", "", "Currency code, defaults to "+config.Currency)
	f.StringVar(&c.result, "result", "", "Total payout received, 0 when out of the money")
	f.StringVar(&c.place, "place", "", "Finishing place")
	f.StringVar(&c.players, "players", "", "Number of entrants")
	f.StringVar(&c.format, "format", "", "Format like MTT, SnG or PKO, defaults to "+config.Format)
	f.StringVar(&c.notes, "notes", "", "Free notes")
}

// entry is the validated subset of the fields of an added tournament.
type entry struct {
	Name     string `validate:"required"`
	Room     string `validate:"required"`
	Currency string `validate:"required,len=3,alpha"`
	Place    int    `validate:"gte=0"`
	Players  int    `validate:"gte=0"`
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := c.record()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e := entry{Name: rec.Name, Room: rec.Room, Currency: rec.Currency, Place: rec.Place, Players: rec.Players}
	if err := validator.New().Struct(e); err != nil {
		fmt.Fprintf(stderr, "Error: invalid tournament: %v\n", err)
		return subcommands.ExitUsageError
	}
	if money.GetCurrency(rec.Currency) == nil {
		logger.Warn("unknown currency code", zap.String("currency", rec.Currency))
	}

	path := ledgerPath()
	if err := tourney.AppendRecord(path, rec); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug("tournament added", zap.String("file", path), zap.String("name", rec.Name))

	printMarkdown(renderer.RecordMarkdown(rec))
	return subcommands.ExitSuccess
}

// record builds the tournament from the flags and the configured defaults.
func (c *addCmd) record() (tourney.Record, error) {
	on := c.date
	if on == "" {
		on = date.Today().String()
	}
	c.warnNumbers()
	return tourney.NewRecord(map[string]string{
		tourney.ColDate:     on,
		tourney.ColRoom:     or(c.room, config.Room),
		tourney.ColName:     c.name,
		tourney.ColBuyIn:    c.buyIn,
		tourney.ColRake:     c.rake,
		tourney.ColCurrency: or(c.currency, config.Currency),
		tourney.ColResult:   c.result,
		tourney.ColPlace:    c.place,
		tourney.ColPlayers:  c.players,
		tourney.ColFormat:   or(c.format, config.Format),
		tourney.ColNotes:    c.notes,
	})
}

// warnNumbers logs the numeric flags that will read as 0, in flag order.
func (c *addCmd) warnNumbers() {
	numbers := []struct {
		flag, value string
		amount      bool
	}{
		{"buy-in", c.buyIn, true},
		{"rake", c.rake, true},
		{"result", c.result, true},
		{"place", c.place, false},
		{"players", c.players, false},
	}
	for _, n := range numbers {
		v := strings.TrimSpace(n.value)
		if v == "" {
			continue
		}
		if n.amount {
			if d, err := decimal.NewFromString(v); err != nil || d.IsNegative() {
				logger.Warn("invalid amount, using 0", zap.String("flag", n.flag), zap.String("value", n.value))
			}
		} else if i, err := strconv.Atoi(v); err != nil || i < 0 {
			logger.Warn("invalid number, using 0", zap.String("flag", n.flag), zap.String("value", n.value))
		}
	}
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
