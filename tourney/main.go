// Command tourney analyses the results of the poker tournaments recorded in a CSV ledger.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/tourney/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Complete("tourney")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	status := commander.Execute(context.Background())
	cmd.Sync()
	os.Exit(int(status))
}
