package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/drajat/kasharian/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "Show the ledger history, newest first." }
func (*historyCmd) Usage() string {
	return `history:
  Print the table of all recorded days, newest first.
`
}
func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closer, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.HistoryMarkdown(ledger.Entries()))
	return subcommands.ExitSuccess
}
