package kasharian

// TransferSet collects the transfer lines being composed for one entry. It
// mirrors the entry form: at least one line is always present (possibly
// empty), but only positive-amount lines count towards the total and the
// persisted detail.
type TransferSet struct {
	lines []Transfer
}

// NewTransferSet returns a set holding one empty line.
func NewTransferSet() *TransferSet {
	return &TransferSet{lines: []Transfer{{}}}
}

// Add appends a transfer line.
func (s *TransferSet) Add(amount Rupiah, bank string) {
	s.lines = append(s.lines, Transfer{Amount: amount, Bank: bank})
}

// Remove deletes line i. Removing the last remaining line, or an index out
// of range, is a no-op.
func (s *TransferSet) Remove(i int) {
	if len(s.lines) <= 1 || i < 0 || i >= len(s.lines) {
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
}

// Len reports the number of lines, counting empty ones.
func (s *TransferSet) Len() int { return len(s.lines) }

// Total sums the positive-amount lines only.
func (s *TransferSet) Total() Rupiah {
	var total Rupiah
	for _, line := range s.lines {
		if line.Amount > 0 {
			total += line.Amount
		}
	}
	return total
}

// Details returns the persistable lines: positive amounts only, in insertion
// order, with blank bank labels replaced by the default.
func (s *TransferSet) Details() []Transfer {
	var details []Transfer
	for _, line := range s.lines {
		if line.Amount <= 0 {
			continue
		}
		if line.Bank == "" {
			line.Bank = DefaultBankLabel
		}
		details = append(details, line)
	}
	return details
}
