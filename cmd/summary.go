package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/tourney"
	"github.com/etnz/tourney/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	filterFlags
	showBy string
	export string
	json   bool
	query  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display statistics of the played tournaments" }
func (*summaryCmd) Usage() string {
	return `tourney summary [-from <date>] [-to <date>] [-room <room>] [-format <format>] [-currency <code>]
                [-show-by none|day|week|month] [-export <file.csv|file.xlsx>] [-json] [-q <jsonpath>]

  Displays the overall statistics of the selected tournaments, then the
  breakdown by format, by buy-in bracket and, with -show-by, by period.

  -export writes the per-period breakdown to a CSV or an Excel file.
  -json prints the report as JSON, and -q a JSONPath query over it.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.register(f)
	f.StringVar(&c.showBy, "show-by", "none", "Breakdown by period: none, day, week or month")
	f.StringVar(&c.export, "export", "", "Export the breakdown by period to this file (.csv or .xlsx)")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
	f.StringVar(&c.query, "q", "", "Print the result of this JSONPath query on the JSON report, like '$.overall.roi_pct'")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	mode, err := tourney.ParseTimeMode(c.showBy)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid -show-by: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.export != "" && mode == tourney.NoTime {
		fmt.Fprintln(stderr, "Error: -export requires -show-by day, week or month")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		return loadFailure(err)
	}

	report := tourney.NewReport(ledger, filter, mode)
	if report.IsEmpty() {
		fmt.Fprintln(stdout, noMatch)
		return subcommands.ExitSuccess
	}

	if c.json || c.query != "" {
		out, err := c.encode(report)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, out)
	} else {
		printMarkdown(renderer.SummaryMarkdown(report))
	}

	if c.export != "" {
		if err := tourney.ExportPeriods(c.export, report.ByTime); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		logger.Debug("periods exported", zap.String("file", c.export), zap.Int("periods", len(report.ByTime)))
		fmt.Fprintf(stderr, "Periods exported to %s\n", c.export)
	}
	return subcommands.ExitSuccess
}

// encode returns the JSON report, or the result of the query on it.
func (c *summaryCmd) encode(report *tourney.Report) (string, error) {
	data, err := report.JSON()
	if err != nil {
		return "", fmt.Errorf("could not encode report: %w", err)
	}
	if c.query == "" {
		return string(data), nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("could not decode report: %w", err)
	}
	val, err := jsonpath.Get(c.query, doc)
	if err != nil {
		return "", fmt.Errorf("invalid query %q: %w", c.query, err)
	}
	if s, ok := val.(string); ok {
		return s, nil
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode query result: %w", err)
	}
	return string(out), nil
}
