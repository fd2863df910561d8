package kasharian

import "testing"

func TestTransferSetAlwaysKeepsOneLine(t *testing.T) {
	set := NewTransferSet()
	if set.Len() != 1 {
		t.Fatalf("a new set has %d lines, want 1", set.Len())
	}

	// Removing the only line is a no-op.
	set.Remove(0)
	if set.Len() != 1 {
		t.Errorf("removing the last line left %d lines, want 1", set.Len())
	}

	set.Add(500000, "BCA")
	set.Remove(0)
	if set.Len() != 1 {
		t.Errorf("after add+remove got %d lines, want 1", set.Len())
	}
	if got := set.Total(); got != 500000 {
		t.Errorf("Total() = %d, want 500000", got)
	}

	// Out of range indexes are ignored.
	set.Add(100, "")
	set.Remove(-1)
	set.Remove(99)
	if set.Len() != 2 {
		t.Errorf("out-of-range removes changed the set, got %d lines", set.Len())
	}
}

func TestTransferSetTotalSkipsEmptyLines(t *testing.T) {
	set := NewTransferSet() // one empty line
	set.Add(1000000, "BCA")
	set.Add(0, "Mandiri")
	set.Add(-500, "BRI")
	set.Add(250000, "")

	if got := set.Total(); got != 1250000 {
		t.Errorf("Total() = %d, want 1250000", got)
	}

	details := set.Details()
	if len(details) != 2 {
		t.Fatalf("Details() kept %d lines, want 2", len(details))
	}
	if details[0].Bank != "BCA" || details[0].Amount != 1000000 {
		t.Errorf("Details()[0] = %+v", details[0])
	}
	// A positive line without a bank falls back to the default label.
	if details[1].Bank != DefaultBankLabel || details[1].Amount != 250000 {
		t.Errorf("Details()[1] = %+v, want the %q label", details[1], DefaultBankLabel)
	}
}
