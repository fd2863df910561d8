package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drajat/kasharian"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	outDir string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "Export the ledger to a JSON backup or a CSV report." }
func (*exportCmd) Usage() string {
	return `export [-format json|csv] [-o <dir>]:
  Write the whole ledger to a file named after today's date. The json format
  is a backup that "kas import" can read back; csv is a spreadsheet report.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "export format, json or csv")
	f.StringVar(&c.outDir, "o", ".", "directory to write the file into")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := appConfig()
	ledger, closer, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	entries := ledger.Entries()
	today := kasharian.Today()

	var path string
	switch c.format {
	case "json":
		path = filepath.Join(c.outDir, kasharian.BackupFileName(today))
		file, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", path, err)
			return subcommands.ExitFailure
		}
		err = kasharian.EncodeBackup(file, entries, cfg.ShopName)
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot write %s: %v\n", path, err)
			return subcommands.ExitFailure
		}

	case "csv":
		if len(entries) == 0 {
			fmt.Fprintln(os.Stderr, "Tidak ada data untuk di-export!")
			return subcommands.ExitFailure
		}
		path = filepath.Join(c.outDir, kasharian.CSVFileName(today))
		file, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", path, err)
			return subcommands.ExitFailure
		}
		err = kasharian.EncodeCSV(file, entries)
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot write %s: %v\n", path, err)
			return subcommands.ExitFailure
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (want json or csv)\n", c.format)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Tersimpan: %s\n", path)
	return subcommands.ExitSuccess
}
