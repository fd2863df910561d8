package kasharian

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the literal, fixed-order header of the CSV report. It is part
// of the export format and must not be localized or reordered.
var csvHeader = []string{
	"Tanggal",
	"Total Penjualan (Rp)",
	"Cash (Rp)",
	"Transfer (Rp)",
	"Pengeluaran (Rp)",
	"Selisih (Rp)",
	"Catatan",
	"Detail Transfer",
}

// EncodeCSV writes one header row plus one row per entry. Fields containing
// quotes or delimiters are quoted per standard CSV rules (doubled quotes), so
// any spreadsheet or naive CSV reader recovers the original notes.
func EncodeCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.Date.String(),
			strconv.FormatInt(int64(e.Sales), 10),
			strconv.FormatInt(int64(e.Cash), 10),
			strconv.FormatInt(int64(e.Transfer), 10),
			strconv.FormatInt(int64(e.Expenses), 10),
			strconv.FormatInt(int64(e.Difference), 10),
			e.Notes,
			e.TransferDetail(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write CSV row for %s: %w", e.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
