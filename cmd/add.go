package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/drajat/kasharian"
	"github.com/drajat/kasharian/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	date      string
	sales     string
	cash      string
	expenses  string
	notes     string
	transfers transferFlag
	yes       bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "Record a day's sales, cash, transfers and expenses." }
func (*addCmd) Usage() string {
	return `add [-d <date>] [-sales <amount>] [-cash <amount>] [-transfer <amount[:bank]>]... [-expenses <amount>] [-notes <text>]:
  Record the figures for one day. Amounts accept thousand separators
  ("1.500.000") as well as plain digits. If an entry already exists for the
  date, it is replaced after confirmation.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "transaction date (default today)")
	f.StringVar(&c.sales, "sales", "", "total sales of the day")
	f.StringVar(&c.cash, "cash", "", "cash received")
	f.StringVar(&c.expenses, "expenses", "", "expenses of the day")
	f.StringVar(&c.notes, "notes", "", "free-form notes")
	f.Var(&c.transfers, "transfer", "a transfer line as amount[:bank], repeatable")
	f.BoolVar(&c.yes, "y", false, "replace an existing entry without asking")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date := kasharian.Today()
	if c.date != "" {
		var err error
		date, err = kasharian.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid date %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
	}

	ledger, closer, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	if _, exists := ledger.FindByDate(date); exists && !c.yes {
		if !confirm("Data untuk tanggal ini sudah ada. Mau update data yang sudah ada?") {
			fmt.Println("Dibatalkan.")
			return subcommands.ExitSuccess
		}
	}

	entry, err := kasharian.NewEntry(date,
		kasharian.ParseRupiah(c.sales),
		kasharian.ParseRupiah(c.cash),
		kasharian.ParseRupiah(c.expenses),
		strings.TrimSpace(c.notes),
		c.transfers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	result, err := ledger.Upsert(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot save entry: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.EntryMarkdown(entry, result))
	return subcommands.ExitSuccess
}

// transferFlag collects repeated -transfer flags, each formatted as
// "amount[:bank]".
type transferFlag []kasharian.Transfer

func (t *transferFlag) String() string {
	parts := make([]string, 0, len(*t))
	for _, line := range *t {
		parts = append(parts, fmt.Sprintf("%d:%s", int64(line.Amount), line.Bank))
	}
	return strings.Join(parts, ",")
}

func (t *transferFlag) Set(value string) error {
	amountText, bank, _ := strings.Cut(value, ":")
	amount := kasharian.ParseRupiah(amountText)
	if amount <= 0 {
		return fmt.Errorf("transfer %q has no positive amount", value)
	}
	*t = append(*t, kasharian.Transfer{Amount: amount, Bank: strings.TrimSpace(bank)})
	return nil
}
