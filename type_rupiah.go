package kasharian

import (
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// Amounts are whole rupiah: the domain has no fractional sub-units, so the
// formatters carry zero fraction digits and dot-grouped thousands.
var (
	rupiahFormatter = money.NewFormatter(0, ",", ".", "Rp", "$ 1")
	groupFormatter  = money.NewFormatter(0, ",", ".", "", "1")
)

// Rupiah is a monetary amount in whole rupiah.
type Rupiah int64

// Format renders the amount with the fixed "Rp " prefix and thousands
// grouping, e.g. Rupiah(1500000).Format() == "Rp 1.500.000".
// Round-trips with ParseRupiah for non-negative amounts.
func (r Rupiah) Format() string { return rupiahFormatter.Format(int64(r)) }

// SignedFormat is Format with an explicit "+" on positive amounts, used when
// displaying a reconciliation difference.
func (r Rupiah) SignedFormat() string {
	if r > 0 {
		return "+" + r.Format()
	}
	return r.Format()
}

// GroupDigits renders the bare dot-grouped number without the currency
// prefix, the way editable input fields show it.
func GroupDigits(n int64) string { return groupFormatter.Format(n) }

// ParseRupiah reads an amount out of user input. Grouping punctuation and any
// other non-digit rune is stripped; empty or fully non-numeric input yields 0.
// Parsing is total: it never fails.
func ParseRupiah(text string) Rupiah {
	digits := digitsOf(text)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return Rupiah(n)
}

// ReformatLive regroups a partially typed amount and repositions the caret by
// the length delta so digits typed mid-string do not visually jump. Input
// with no digits yields ("", 0).
func ReformatLive(text string, cursor int) (string, int) {
	if digitsOf(text) == "" {
		return "", 0
	}
	formatted := GroupDigits(int64(ParseRupiah(text)))
	newCursor := cursor + len(formatted) - len(text)
	if newCursor < 0 {
		newCursor = 0
	}
	if newCursor > len(formatted) {
		newCursor = len(formatted)
	}
	return formatted, newCursor
}

func digitsOf(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
