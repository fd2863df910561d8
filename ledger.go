package kasharian

import (
	"encoding/json"
	"fmt"
	"log"
)

// StorageKey is the single store key holding the serialized entry collection.
const StorageKey = "financialData"

// UpsertResult tells a caller whether an upsert created a new entry or
// replaced the entry already recorded for that date.
type UpsertResult int

const (
	Created UpsertResult = iota
	Replaced
)

func (r UpsertResult) String() string {
	if r == Replaced {
		return "replaced"
	}
	return "created"
}

// Ledger owns the ordered entry collection, most-recent-save-first. No other
// component mutates the collection; every mutating operation persists the
// full collection through the store before returning, so the in-memory state
// and the persistent mirror stay consistent.
//
// Whether an overwrite or a deletion should proceed is the caller's concern:
// the ledger performs already-decided mutations only.
type Ledger struct {
	entries []Entry
	store   Store
}

// NewLedger creates an empty ledger persisting through store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Load reconstructs the collection from the persistent store. Missing data
// starts the ledger empty; a payload that fails to parse is treated as
// absent, not fatal.
func (l *Ledger) Load() error {
	payload, ok, err := l.store.Get(StorageKey)
	if err != nil {
		return fmt.Errorf("could not read ledger from store: %w", err)
	}
	if !ok {
		l.entries = nil
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		log.Printf("warning: ignoring corrupt ledger payload: %v", err)
		l.entries = nil
		return nil
	}
	l.entries = entries
	return nil
}

// Upsert records an entry under its business date. An existing entry for the
// same date is replaced in place, keeping its position in the collection; a
// new date is prepended. At most one entry per date can exist.
func (l *Ledger) Upsert(e Entry) (UpsertResult, error) {
	for i := range l.entries {
		if l.entries[i].Date == e.Date {
			l.entries[i] = e
			return Replaced, l.persist()
		}
	}
	l.entries = append([]Entry{e}, l.entries...)
	return Created, l.persist()
}

// Remove deletes the entry with the given id and reports whether a removal
// occurred. Removing an unknown id leaves the collection unchanged.
func (l *Ledger) Remove(id int64) (bool, error) {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true, l.persist()
		}
	}
	return false, nil
}

// ReplaceAll swaps in a whole new collection, as the import flow does. The
// entries are trusted as-is; shape checks happened in the backup codec.
func (l *Ledger) ReplaceAll(entries []Entry) error {
	l.entries = entries
	return l.persist()
}

// Clear empties the collection.
func (l *Ledger) Clear() error {
	l.entries = nil
	return l.persist()
}

// Entries returns a snapshot of the collection in current order.
func (l *Ledger) Entries() []Entry {
	snapshot := make([]Entry, len(l.entries))
	copy(snapshot, l.entries)
	return snapshot
}

// Find returns the entry with the given id.
func (l *Ledger) Find(id int64) (Entry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// FindByDate returns the entry recorded for a business date.
func (l *Ledger) FindByDate(d Date) (Entry, bool) {
	for _, e := range l.entries {
		if e.Date == d {
			return e, true
		}
	}
	return Entry{}, false
}

// Aggregate sums the collection for summary reporting.
func (l *Ledger) Aggregate() Totals {
	return AggregateEntries(l.entries)
}

func (l *Ledger) persist() error {
	entries := l.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("could not serialize ledger: %w", err)
	}
	if err := l.store.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("could not persist ledger: %w", err)
	}
	return nil
}
