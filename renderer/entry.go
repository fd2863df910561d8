package renderer

import (
	"bytes"
	"fmt"

	"github.com/drajat/kasharian"
	md "github.com/nao1215/markdown"
)

// EntryMarkdown renders the review of a single saved entry, with the
// reconciliation difference and its surplus/shortfall/even class.
func EntryMarkdown(e kasharian.Entry, result kasharian.UpsertResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Data %s (%s)", e.Date.Display(), result))

	rows := [][]string{
		{"Total Penjualan", e.Sales.Format()},
		{"Cash", e.Cash.Format()},
		{"Transfer", e.Transfer.Format()},
	}
	for _, t := range e.Transfers {
		rows = append(rows, []string{"  " + t.Bank, t.Amount.Format()})
	}
	rows = append(rows,
		[]string{"Pengeluaran", e.Expenses.Format()},
		[]string{"Selisih", fmt.Sprintf("%s (%s)", e.Difference.SignedFormat(), kasharian.ClassifyDifference(e.Difference))},
	)
	if e.Notes != "" {
		rows = append(rows, []string{"Catatan", e.Notes})
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows:      rows,
	})

	return doc.String()
}
