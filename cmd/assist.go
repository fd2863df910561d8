package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/drajat/kasharian/agent"
	"github.com/drajat/kasharian/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "Chat with the AI bookkeeper about the ledger." }
func (*assistCmd) Usage() string {
	return `assist [<question>]:
  Start an interactive chat with a bookkeeper that knows the current ledger.
  Needs a Gemini API key in the environment (GEMINI_API_KEY).
`
}
func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closer, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	// Ground the bookkeeper with the same reports the user can see.
	reports := renderer.SummaryMarkdown(ledger.Aggregate(), time.Now()) +
		"\n" + renderer.HistoryMarkdown(ledger.Entries())

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start the bookkeeper: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewBookkeeper(reports))
	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
