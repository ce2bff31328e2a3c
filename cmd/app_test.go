package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

const sampleLedger = `date,room,name,buy_in,rake,currency,result,place,players,format,notes
2025-01-05,PokerOK,Daily 10,10,1,USD,0,250,900,MTT,
2025-01-06,PokerOK,Bounty,5,0.5,USD,25.75,3,120,PKO,
2025-02-01,Stars,Big 3,3,0.3,USD,0,40,500,MTT,
`

// useLedger points the commands to a ledger file in a temporary directory,
// with content if it is not empty.
func useLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tournaments.csv")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	old := *ledgerFile
	*ledgerFile = path
	t.Cleanup(func() { *ledgerFile = old })
	return path
}

// run executes the command c with args, and returns its status and outputs.
func run(t *testing.T, c subcommands.Command, args ...string) (status subcommands.ExitStatus, out, errOut string) {
	t.Helper()
	var o, e bytes.Buffer
	stdout, stderr = &o, &e
	t.Cleanup(func() { stdout, stderr = os.Stdout, os.Stderr })

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	status = c.Execute(context.Background(), f)
	return status, o.String(), e.String()
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TOURNEY_ROOM", "Stars")
	t.Setenv("TOURNEY_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
	}
	if cfg.Room != "Stars" || cfg.LogLevel != "debug" {
		t.Errorf("LoadConfig() = %+v, want the room and log level from the environment", cfg)
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "WARN", "error"} {
		if _, err := newLogger(level); err != nil {
			t.Errorf("newLogger(%q) returned an unexpected error: %v", level, err)
		}
	}
	if _, err := newLogger("chatty"); err == nil {
		t.Error("newLogger(\"chatty\") should fail")
	}
}

func TestLedgerPath(t *testing.T) {
	if got := ledgerPath(); got != config.File {
		t.Errorf("ledgerPath() = %q, want the configured %q", got, config.File)
	}
	path := useLedger(t, "")
	if got := ledgerPath(); got != path {
		t.Errorf("ledgerPath() = %q, want the -file flag %q", got, path)
	}
}
