package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/drajat/kasharian"
	"github.com/google/subcommands"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "Replace the ledger with a JSON backup." }
func (*importCmd) Usage() string {
	return `import <file>:
  Read a backup written by "kas export" and replace the current ledger with
  its entries, after confirmation. An invalid backup leaves the ledger
  untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "import without asking")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "import needs exactly one backup file")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gagal import data: %v\n", err)
		return subcommands.ExitFailure
	}
	entries, err := kasharian.DecodeBackup(file)
	file.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gagal import data: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(fmt.Sprintf("Import %d data? Data lama akan diganti.", len(entries))) {
		fmt.Println("Dibatalkan.")
		return subcommands.ExitSuccess
	}

	ledger, closer, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	if err := ledger.ReplaceAll(entries); err != nil {
		fmt.Fprintf(os.Stderr, "Gagal import data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ %d data berhasil diimport!\n", len(entries))
	return subcommands.ExitSuccess
}
