package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "Delete ALL entries." }
func (*clearCmd) Usage() string {
	return `clear:
  Remove every entry from the ledger. Asks twice; this cannot be undone.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "clear without asking")
}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closer, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	// Clearing everything is the one mutation that cannot be recovered from,
	// so it takes two confirmations.
	if !c.yes {
		if !confirm("Apakah Anda yakin ingin menghapus SEMUA data?") {
			fmt.Println("Dibatalkan.")
			return subcommands.ExitSuccess
		}
		if !confirm("PERINGATAN: Semua data akan dihapus permanen! Lanjutkan?") {
			fmt.Println("Dibatalkan.")
			return subcommands.ExitSuccess
		}
	}

	if err := ledger.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "cannot clear ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Semua data berhasil dihapus.")
	return subcommands.ExitSuccess
}
