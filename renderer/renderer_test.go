package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/drajat/kasharian"
)

func TestHistoryMarkdown(t *testing.T) {
	entry, err := kasharian.NewEntry(
		kasharian.NewDate(2025, time.June, 2),
		1500000, 800000, 50000, "hari pasar",
		[]kasharian.Transfer{{Amount: 500000, Bank: "BCA"}})
	if err != nil {
		t.Fatalf("NewEntry failed: %v", err)
	}

	out := HistoryMarkdown([]kasharian.Entry{entry})

	for _, want := range []string{
		"# Riwayat Keuangan",
		"02/06/2025",
		"Rp 1.500.000",
		"Rp 500.000 (BCA: 500000)",
		"-Rp 250.000", // 800000+500000-1500000-50000
	} {
		if !strings.Contains(out, want) {
			t.Errorf("history output is missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryMarkdownEmpty(t *testing.T) {
	out := HistoryMarkdown(nil)
	if !strings.Contains(out, "Belum ada data keuangan.") {
		t.Errorf("empty history output = %s", out)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	totals := kasharian.Totals{Records: 3, TotalSales: 4500000, TotalTransfer: 750000}
	now := time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC)

	out := SummaryMarkdown(totals, now)

	for _, want := range []string{
		"# Ringkasan Data",
		"Rp 4.500.000",
		"Rp 750.000",
		"Terakhir update: 02/06/2025 18:30",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output is missing %q:\n%s", want, out)
		}
	}

	if empty := SummaryMarkdown(kasharian.Totals{}, now); !strings.Contains(empty, "Belum ada data keuangan.") {
		t.Errorf("empty summary output = %s", empty)
	}
}

func TestEntryMarkdown(t *testing.T) {
	entry, err := kasharian.NewEntry(
		kasharian.NewDate(2025, time.June, 2),
		1000, 600, 0, "",
		[]kasharian.Transfer{{Amount: 400, Bank: "BCA"}})
	if err != nil {
		t.Fatalf("NewEntry failed: %v", err)
	}

	out := EntryMarkdown(entry, kasharian.Created)

	if !strings.Contains(out, "# Data 02/06/2025 (created)") {
		t.Errorf("entry output is missing the title:\n%s", out)
	}
	// A balanced day shows an even difference.
	if !strings.Contains(out, "Rp 0 (even)") {
		t.Errorf("entry output is missing the balance class:\n%s", out)
	}
	if strings.Contains(out, "Catatan") {
		t.Errorf("entry without notes must not show a notes row:\n%s", out)
	}
}
