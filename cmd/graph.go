package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tourney"
	"github.com/etnz/tourney/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type graphCmd struct {
	filterFlags
	metric        string
	startBankroll string
	output        string
}

func (*graphCmd) Name() string     { return "graph" }
func (*graphCmd) Synopsis() string { return "show the cumulated profit or bankroll over time" }
func (*graphCmd) Usage() string {
	return `tourney graph [-from <date>] [-to <date>] [-room <room>] [-format <format>] [-currency <code>]
              [-metric profit|bankroll] [-start-bankroll <amount>] [-output <chart.png>]

  Displays the running total of profits, tournament after tournament.
  The bankroll metric adds it to the starting bankroll, which is then required.
  -output also draws the series as a PNG chart.
`
}

func (c *graphCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.register(f)
	f.StringVar(&c.metric, "metric", "profit", "Metric to show: profit or bankroll")
	f.StringVar(&c.startBankroll, "start-bankroll", "", "Starting bankroll, required by the bankroll metric")
	f.StringVar(&c.output, "output", "", "Save the chart to this PNG file")
}

func (c *graphCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	metric, err := tourney.ParseMetric(c.metric)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid -metric: %v\n", err)
		return subcommands.ExitUsageError
	}
	var bankroll *decimal.Decimal
	if c.startBankroll != "" {
		b, err := decimal.NewFromString(c.startBankroll)
		if err != nil {
			fmt.Fprintf(stderr, "Error: invalid -start-bankroll %q: %v\n", c.startBankroll, err)
			return subcommands.ExitUsageError
		}
		bankroll = &b
	}
	start, err := metric.Start(bankroll)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v, use -start-bankroll\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		return loadFailure(err)
	}

	records := ledger.Select(filter)
	if len(records) == 0 {
		fmt.Fprintln(stdout, noMatch)
		return subcommands.ExitSuccess
	}
	points := tourney.Cumulative(records, start)
	printMarkdown(renderer.SeriesMarkdown(metric, points))

	if c.output != "" {
		if err := savePlot(c.output, metric, points); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stderr, "Chart saved to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}

func savePlot(path string, metric tourney.Metric, points []tourney.Point) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create chart file %q: %w", path, err)
	}
	defer out.Close()
	if err := renderer.PlotSeries(out, metric, points); err != nil {
		return fmt.Errorf("could not draw chart %q: %w", path, err)
	}
	return out.Close()
}
