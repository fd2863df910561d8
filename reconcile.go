package kasharian

// Balance classifies a reconciliation difference for display. The calculator
// owns the classification so the presentation layer only picks colors.
type Balance int

const (
	// Even means cash and transfers exactly cover sales and expenses.
	Even Balance = iota
	// Surplus means more cash came in than sales and expenses account for.
	Surplus
	// Shortfall means less cash came in than sales and expenses account for.
	Shortfall
)

func (b Balance) String() string {
	switch b {
	case Even:
		return "even"
	case Surplus:
		return "surplus"
	case Shortfall:
		return "shortfall"
	default:
		return "unknown"
	}
}

// Difference is the reconciliation metric this tool exists to compute:
// (cash + transferTotal) - (sales + expenses). Positive means surplus cash
// beyond reported sales and expenses, negative a shortfall.
func Difference(sales, cash, transferTotal, expenses Rupiah) Rupiah {
	return (cash + transferTotal) - (sales + expenses)
}

// ClassifyDifference maps the sign of a difference to its Balance class.
func ClassifyDifference(d Rupiah) Balance {
	switch {
	case d > 0:
		return Surplus
	case d < 0:
		return Shortfall
	default:
		return Even
	}
}

// Totals aggregates the collection for summary reporting. Stored differences
// are never recomputed here.
type Totals struct {
	Records       int
	TotalSales    Rupiah
	TotalTransfer Rupiah
}

// AggregateEntries sums sales and transfers across the full collection.
// An empty collection yields zero totals.
func AggregateEntries(entries []Entry) Totals {
	t := Totals{Records: len(entries)}
	for _, e := range entries {
		t.TotalSales += e.Sales
		t.TotalTransfer += e.Transfer
	}
	return t
}
