package kasharian

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// decodeAmount reads a monetary field out of a raw JSON value. Whole numbers,
// floats and quoted numbers all decode; anything unreadable yields 0, keeping
// entry decoding as total as ParseRupiah. Fractional values truncate to whole
// rupiah.
func decodeAmount(raw json.RawMessage) Rupiah {
	if len(raw) == 0 {
		return 0
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return 0
	}
	return Rupiah(d.IntPart())
}

// decodeString reads a text field out of a raw JSON value, yielding "" when
// the field is absent or not a string.
func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
