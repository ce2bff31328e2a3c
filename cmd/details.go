package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tourney"
	"github.com/etnz/tourney/renderer"
	"github.com/google/subcommands"
)

type detailsCmd struct {
	filterFlags
	limit int
}

func (*detailsCmd) Name() string     { return "details" }
func (*detailsCmd) Synopsis() string { return "list the played tournaments" }
func (*detailsCmd) Usage() string {
	return `tourney details [-from <date>] [-to <date>] [-room <room>] [-format <format>] [-currency <code>] [-limit <n>]

  Lists the selected tournaments, oldest first. The buy-in column includes the rake.
`
}

func (c *detailsCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.register(f)
	f.IntVar(&c.limit, "limit", 0, "Maximum number of tournaments to list, 0 for all")
}

func (c *detailsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		return loadFailure(err)
	}

	records := tourney.SortByDate(ledger.Select(filter))
	if len(records) == 0 {
		fmt.Fprintln(stdout, noMatch)
		return subcommands.ExitSuccess
	}
	if c.limit > 0 && c.limit < len(records) {
		records = records[:c.limit]
	}
	printMarkdown(renderer.DetailsMarkdown(records))
	return subcommands.ExitSuccess
}
