package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/drajat/kasharian"
	"github.com/google/subcommands"
)

type editCmd struct {
	id int64
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "Print an entry as a ready-to-edit add command." }
func (*editCmd) Usage() string {
	return `edit -id <id>:
  Print the entry as a "kas add" command line prefilled with its current
  values. Adjust the flags and run it to replace the entry; the entry keeps
  its place in the history.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "id of the entry to edit")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closer, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	entry, ok := ledger.Find(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "no entry with id %d\n", c.id)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "kas add -d %s", entry.Date)
	if entry.Sales != 0 {
		fmt.Fprintf(&b, " -sales %s", kasharian.GroupDigits(int64(entry.Sales)))
	}
	if entry.Cash != 0 {
		fmt.Fprintf(&b, " -cash %s", kasharian.GroupDigits(int64(entry.Cash)))
	}
	for _, line := range entry.Transfers {
		fmt.Fprintf(&b, " -transfer %s:%s", kasharian.GroupDigits(int64(line.Amount)), line.Bank)
	}
	if entry.Expenses != 0 {
		fmt.Fprintf(&b, " -expenses %s", kasharian.GroupDigits(int64(entry.Expenses)))
	}
	if entry.Notes != "" {
		fmt.Fprintf(&b, " -notes %q", entry.Notes)
	}
	fmt.Println(b.String())
	return subcommands.ExitSuccess
}
