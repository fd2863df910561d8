package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/drajat/kasharian"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the stored-data summary: record count, total sales
// and total transfer across the collection, and the time of the report.
func SummaryMarkdown(totals kasharian.Totals, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ringkasan Data")

	if totals.Records == 0 {
		doc.PlainText("Belum ada data keuangan.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Records", fmt.Sprintf("%d", totals.Records)},
			{"Total Penjualan", totals.TotalSales.Format()},
			{"Total Transfer", totals.TotalTransfer.Format()},
		},
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Terakhir update: %s", now.Format("02/01/2006 15:04")))

	return doc.String()
}
