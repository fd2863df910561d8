package kasharian

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// BackupVersion tags the backup envelope format.
const BackupVersion = "1.1"

// FormatError reports a backup payload whose shape is not importable. A
// failed decode leaves the ledger untouched: the caller only replaces the
// collection on success.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid backup format: " + e.Reason
}

// BackupFileName is the conventional JSON backup file name for an export on
// the given date.
func BackupFileName(on Date) string {
	return "backup-keuangan-" + on.Compact() + ".json"
}

// CSVFileName is the conventional CSV report file name for an export on the
// given date.
func CSVFileName(on Date) string {
	return "laporan-keuangan-" + on.Compact() + ".csv"
}

// EncodeBackup writes the versioned backup envelope:
//
//	{"version": "1.1", "backupDate": ..., "shopName": ..., "financialData": [...]}
//
// The field order is fixed and the payload is indented, matching the
// historical backup files.
func EncodeBackup(w io.Writer, entries []Entry, shopName string) error {
	if entries == nil {
		entries = []Entry{}
	}
	var jw jsonObjectWriter
	jw.Append("version", BackupVersion)
	jw.Append("backupDate", time.Now().Format(time.RFC3339))
	jw.Append("shopName", shopName)
	jw.Append("financialData", entries)

	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not serialize backup: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return fmt.Errorf("could not indent backup: %w", err)
	}
	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("could not write backup: %w", err)
	}
	return nil
}

// DecodeBackup reads a backup envelope and returns its entries. It fails
// with a *FormatError when the payload is not a JSON object or lacks the
// financialData field; beyond that shape check the entries decode
// permissively, matching the permissive ReplaceAll.
func DecodeBackup(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read backup: %w", err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &FormatError{Reason: "not a JSON object"}
	}
	raw, ok := envelope["financialData"]
	if !ok || string(bytes.TrimSpace(raw)) == "null" {
		return nil, &FormatError{Reason: "missing financialData"}
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &FormatError{Reason: "financialData is not an entry list"}
	}
	return entries, nil
}
