package kasharian

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		amount Rupiah
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1234, "Rp 1.234"},
		{1500000, "Rp 1.500.000"},
		{-500, "-Rp 500"},
	}
	for _, tt := range tests {
		if got := tt.amount.Format(); got != tt.want {
			t.Errorf("Rupiah(%d).Format() = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestSignedFormat(t *testing.T) {
	tests := []struct {
		amount Rupiah
		want   string
	}{
		{5000, "+Rp 5.000"},
		{0, "Rp 0"},
		{-5000, "-Rp 5.000"},
	}
	for _, tt := range tests {
		if got := tt.amount.SignedFormat(); got != tt.want {
			t.Errorf("Rupiah(%d).SignedFormat() = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestParseRupiah(t *testing.T) {
	tests := []struct {
		input string
		want  Rupiah
	}{
		{"", 0},
		{"abc", 0},
		{"1500000", 1500000},
		{"1.500.000", 1500000},
		{"Rp 1.234", 1234},
		{"  2.000  ", 2000},
	}
	for _, tt := range tests {
		if got := ParseRupiah(tt.input); got != tt.want {
			t.Errorf("ParseRupiah(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// TestParseFormatRoundTrip asserts that parsing a formatted amount returns
// the amount, for the non-negative range the ledger stores.
func TestParseFormatRoundTrip(t *testing.T) {
	for _, amount := range []Rupiah{0, 1, 999, 1000, 1500000, 250000000} {
		if got := ParseRupiah(amount.Format()); got != amount {
			t.Errorf("ParseRupiah(%q) = %d, want %d", amount.Format(), got, amount)
		}
	}
}

func TestReformatLive(t *testing.T) {
	tests := []struct {
		input      string
		cursor     int
		want       string
		wantCursor int
	}{
		// No digits clears the field.
		{"", 0, "", 0},
		{"abc", 2, "", 0},
		// A fifth digit typed at the end gains a separator; the caret moves
		// with it.
		{"12345", 5, "12.345", 6},
		// A digit typed mid-string shifts the separator; the caret follows
		// the length delta.
		{"1.2345", 6, "12.345", 6},
		// The caret never escapes the text.
		{"12345", 0, "12.345", 1},
	}
	for _, tt := range tests {
		got, gotCursor := ReformatLive(tt.input, tt.cursor)
		if got != tt.want || gotCursor != tt.wantCursor {
			t.Errorf("ReformatLive(%q, %d) = (%q, %d), want (%q, %d)",
				tt.input, tt.cursor, got, gotCursor, tt.want, tt.wantCursor)
		}
	}
}
