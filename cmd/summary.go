package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/drajat/kasharian/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "Show the ledger totals." }
func (*summaryCmd) Usage() string {
	return `summary:
  Print the number of recorded days and the running totals for sales and
  transfers.
`
}
func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closer, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.SummaryMarkdown(ledger.Aggregate(), time.Now()))
	return subcommands.ExitSuccess
}
