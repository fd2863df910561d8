package kasharian

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DefaultBankLabel labels transfer lines recorded without a bank name.
const DefaultBankLabel = "Transfer"

// ErrDateRequired rejects a save without a transaction date.
var ErrDateRequired = errors.New("transaction date is required")

// Transfer is one bank-transfer line attached to an entry.
type Transfer struct {
	Amount Rupiah `json:"amount"`
	Bank   string `json:"bank"`
}

// Entry is a single day's ledger record.
//
// Difference is a snapshot taken when the entry was saved: history shows the
// value as it was computed at save time, it is never recomputed on display.
type Entry struct {
	ID         int64
	Date       Date
	Sales      Rupiah
	Cash       Rupiah
	Transfer   Rupiah // aggregate of Transfers, never edited independently
	Transfers  []Transfer
	Expenses   Rupiah
	Difference Rupiah
	Notes      string
	CreatedAt  time.Time
}

// NewEntry assembles a ledger entry from the submitted fields. Transfer lines
// with a non-positive amount are dropped, blank bank labels default to
// "Transfer", and the aggregate and difference are computed here. A zero date
// is rejected; no partial entry is produced.
func NewEntry(date Date, sales, cash, expenses Rupiah, notes string, transfers []Transfer) (Entry, error) {
	if date.IsZero() {
		return Entry{}, ErrDateRequired
	}

	details := make([]Transfer, 0, len(transfers))
	var total Rupiah
	for _, t := range transfers {
		if t.Amount <= 0 {
			continue
		}
		if t.Bank == "" {
			t.Bank = DefaultBankLabel
		}
		details = append(details, t)
		total += t.Amount
	}

	return Entry{
		ID:         newEntryID(),
		Date:       date,
		Sales:      sales,
		Cash:       cash,
		Transfer:   total,
		Transfers:  details,
		Expenses:   expenses,
		Difference: Difference(sales, cash, total, expenses),
		Notes:      notes,
		CreatedAt:  time.Now(),
	}, nil
}

// lastEntryID guards against two saves landing in the same millisecond.
var lastEntryID int64

// newEntryID returns a monotonic creation-order token (millisecond based, as
// the historical data files use).
func newEntryID() int64 {
	id := time.Now().UnixMilli()
	if id <= lastEntryID {
		id = lastEntryID + 1
	}
	lastEntryID = id
	return id
}

// TransferDetail flattens the transfer lines into the "bank: amount" list
// used by the CSV export and the history table. Entries saved before
// multi-transfer support have no lines; they yield the synthetic
// "Transfer: <amount>" form.
func (e Entry) TransferDetail() string {
	if len(e.Transfers) == 0 {
		return fmt.Sprintf("%s: %d", DefaultBankLabel, e.Transfer)
	}
	detail := ""
	for i, t := range e.Transfers {
		if i > 0 {
			detail += "; "
		}
		detail += fmt.Sprintf("%s: %d", t.Bank, t.Amount)
	}
	return detail
}

// MarshalJSON writes the entry with the historical key order of the data
// files, so exported backups stay byte-compatible with older ones.
func (e Entry) MarshalJSON() ([]byte, error) {
	details := e.Transfers
	if details == nil {
		details = []Transfer{}
	}
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("sales", e.Sales)
	w.Append("cash", e.Cash)
	w.Append("transfer", e.Transfer)
	w.Append("transferDetails", details)
	w.Append("expenses", e.Expenses)
	w.Append("difference", e.Difference)
	w.Append("notes", e.Notes)
	w.Append("createdAt", e.CreatedAt.Format(time.RFC3339))
	return w.MarshalJSON()
}

// UnmarshalJSON reads an entry permissively: amounts may be any JSON number
// (old backups carry floats) or even quoted numbers, and unreadable fields
// fall back to their zero value rather than failing the whole import.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID              json.RawMessage   `json:"id"`
		Date            json.RawMessage   `json:"date"`
		Sales           json.RawMessage   `json:"sales"`
		Cash            json.RawMessage   `json:"cash"`
		Transfer        json.RawMessage   `json:"transfer"`
		TransferDetails []json.RawMessage `json:"transferDetails"`
		Expenses        json.RawMessage   `json:"expenses"`
		Difference      json.RawMessage   `json:"difference"`
		Notes           json.RawMessage   `json:"notes"`
		CreatedAt       json.RawMessage   `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.ID = int64(decodeAmount(raw.ID))
	if str := decodeString(raw.Date); str != "" {
		if d, err := ParseDate(str); err == nil {
			e.Date = d
		}
	}
	e.Sales = decodeAmount(raw.Sales)
	e.Cash = decodeAmount(raw.Cash)
	e.Transfer = decodeAmount(raw.Transfer)
	e.Expenses = decodeAmount(raw.Expenses)
	e.Difference = decodeAmount(raw.Difference)
	e.Notes = decodeString(raw.Notes)
	if str := decodeString(raw.CreatedAt); str != "" {
		if t, err := time.Parse(time.RFC3339, str); err == nil {
			e.CreatedAt = t
		}
	}

	e.Transfers = nil
	for _, rawDetail := range raw.TransferDetails {
		var detail struct {
			Amount json.RawMessage `json:"amount"`
			Bank   json.RawMessage `json:"bank"`
		}
		if err := json.Unmarshal(rawDetail, &detail); err != nil {
			continue
		}
		e.Transfers = append(e.Transfers, Transfer{
			Amount: decodeAmount(detail.Amount),
			Bank:   decodeString(detail.Bank),
		})
	}
	return nil
}
