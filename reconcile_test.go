package kasharian

import (
	"testing"
	"time"
)

func TestDifference(t *testing.T) {
	tests := []struct {
		name                            string
		sales, cash, transfers, expense Rupiah
		want                            Rupiah
	}{
		{"balanced", 1000, 600, 400, 0, 0},
		{"surplus", 100, 80, 30, 5, 5},
		{"shortfall", 1000, 500, 400, 0, -100},
		{"all zero", 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Difference(tt.sales, tt.cash, tt.transfers, tt.expense)
			if got != tt.want {
				t.Errorf("Difference(%d, %d, %d, %d) = %d, want %d",
					tt.sales, tt.cash, tt.transfers, tt.expense, got, tt.want)
			}
		})
	}
}

func TestClassifyDifference(t *testing.T) {
	if got := ClassifyDifference(0); got != Even {
		t.Errorf("ClassifyDifference(0) = %v, want %v", got, Even)
	}
	if got := ClassifyDifference(1); got != Surplus {
		t.Errorf("ClassifyDifference(1) = %v, want %v", got, Surplus)
	}
	if got := ClassifyDifference(-1); got != Shortfall {
		t.Errorf("ClassifyDifference(-1) = %v, want %v", got, Shortfall)
	}
}

func TestAggregateEntries(t *testing.T) {
	// An empty collection yields zero totals, not an error.
	empty := AggregateEntries(nil)
	if empty.Records != 0 || empty.TotalSales != 0 || empty.TotalTransfer != 0 {
		t.Errorf("AggregateEntries(nil) = %+v, want zeros", empty)
	}

	entries := []Entry{
		{Date: NewDate(2025, time.June, 2), Sales: 1500000, Transfer: 500000},
		{Date: NewDate(2025, time.June, 1), Sales: 2000000, Transfer: 0},
	}
	totals := AggregateEntries(entries)
	if totals.Records != 2 {
		t.Errorf("Records = %d, want 2", totals.Records)
	}
	if totals.TotalSales != 3500000 {
		t.Errorf("TotalSales = %d, want 3500000", totals.TotalSales)
	}
	if totals.TotalTransfer != 500000 {
		t.Errorf("TotalTransfer = %d, want 500000", totals.TotalTransfer)
	}
}
