package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	path string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "Evaluate a JSONPath expression against a backup file." }
func (*queryCmd) Usage() string {
	return `query <file> [-q <jsonpath>]:
  Inspect a backup file without importing it. For instance
  "kas query backup.json -q '$.financialData[0].date'" prints the date of
  the newest entry in the backup.
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "q", "$.financialData", "the JSONPath expression to evaluate")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "query needs exactly one backup file")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "%s is not valid JSON: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(c.path, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot evaluate %q: %v\n", c.path, err)
		return subcommands.ExitFailure
	}
	// A query for a single value often comes back as a list of one; unwrap it
	// for readability.
	if list, ok := result.([]interface{}); ok && len(list) == 1 {
		result = list[0]
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
