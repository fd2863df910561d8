package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id  int64
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "Delete one entry by id." }
func (*deleteCmd) Usage() string {
	return `delete -id <id>:
  Remove the entry with the given id, after confirmation.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "id of the entry to delete")
	f.BoolVar(&c.yes, "y", false, "delete without asking")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closer, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	if _, ok := ledger.Find(c.id); !ok {
		fmt.Fprintf(os.Stderr, "no entry with id %d\n", c.id)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm("Apakah Anda yakin ingin menghapus data ini?") {
		fmt.Println("Dibatalkan.")
		return subcommands.ExitSuccess
	}

	removed, err := ledger.Remove(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot delete entry: %v\n", err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Fprintf(os.Stderr, "no entry with id %d\n", c.id)
		return subcommands.ExitFailure
	}
	fmt.Println("Data berhasil dihapus.")
	return subcommands.ExitSuccess
}
