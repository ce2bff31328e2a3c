// Package cmd implements the tourney command line.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tourney"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&detailsCmd{}, "reports")
	c.Register(&graphCmd{}, "reports")
	c.Register(&addCmd{}, "ledger")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("file", "", "Path to the ledger CSV file (defaults to $TOURNEY_FILE or tournaments.csv)")
var verbose = flag.Bool("v", false, "Log debug messages")
var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it")

var (
	config = defaultConfig()
	logger = zap.NewNop()

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// noMatch is printed when the filters select no tournament.
const noMatch = "no tournaments match the given filters"

// Setup loads the configuration and creates the logger.
// It must be called once the command line flags are parsed.
func Setup() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if *verbose {
		level = "debug"
	}
	l, err := newLogger(level)
	if err != nil {
		return err
	}
	config, logger = cfg, l
	return nil
}

// Sync flushes the logger.
func Sync() { _ = logger.Sync() }

// ledgerPath returns the ledger file to use.
func ledgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	return config.File
}

// loadLedger reads the ledger file, and logs the rows and columns it could not read.
func loadLedger() (*tourney.Ledger, error) {
	path := ledgerPath()
	ledger, err := tourney.LoadLedger(path)
	if err != nil {
		return nil, err
	}
	for _, e := range ledger.Skipped() {
		logger.Warn("skipping ledger row with an invalid date",
			zap.String("file", path), zap.Int("line", e.Line), zap.String("date", e.Value), zap.Error(e.Err))
	}
	if missing := ledger.MissingColumns(); len(missing) > 0 {
		logger.Warn("ledger is missing columns, they read as empty",
			zap.String("file", path), zap.Strings("columns", missing))
	}
	logger.Debug("ledger loaded", zap.String("file", path), zap.Int("records", ledger.Len()))
	return ledger, nil
}

// loadFailure reports a ledger loading error.
func loadFailure(err error) subcommands.ExitStatus {
	if errors.Is(err, tourney.ErrLedgerNotFound) {
		fmt.Fprintf(stderr, "Error: ledger file %q not found, use 'tourney add' to create it\n", ledgerPath())
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal, or prints it as is when
// stdout is not a terminal or -plain is set.
func printMarkdown(md string) {
	if *plain || !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		logger.Debug("could not render markdown", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
