package renderer

import (
	"bytes"
	"fmt"

	"github.com/drajat/kasharian"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the full entry collection as the history table,
// most recent save first, exactly as the ledger orders it.
func HistoryMarkdown(entries []kasharian.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Riwayat Keuangan")

	if len(entries) == 0 {
		doc.PlainText("Belum ada data keuangan.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Tanggal", "Penjualan", "Cash", "Transfer", "Pengeluaran", "Selisih", "Catatan"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		transfer := e.Transfer.Format()
		if len(e.Transfers) > 0 {
			transfer = fmt.Sprintf("%s (%s)", e.Transfer.Format(), e.TransferDetail())
		}
		notes := e.Notes
		if notes == "" {
			notes = "-"
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.ID),
			e.Date.Display(),
			e.Sales.Format(),
			e.Cash.Format(),
			transfer,
			e.Expenses.Format(),
			e.Difference.SignedFormat(),
			notes,
		})
	}
	doc.Table(table)

	return doc.String()
}
