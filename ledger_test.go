package kasharian

import (
	"testing"
	"time"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func newTestLedger(t *testing.T) (*Ledger, *memStore) {
	t.Helper()
	store := newMemStore()
	ledger := NewLedger(store)
	if err := ledger.Load(); err != nil {
		t.Fatalf("loading an empty store failed: %v", err)
	}
	return ledger, store
}

func mustEntry(t *testing.T, date Date, sales Rupiah) Entry {
	t.Helper()
	entry, err := NewEntry(date, sales, 0, 0, "", nil)
	if err != nil {
		t.Fatalf("NewEntry failed: %v", err)
	}
	return entry
}

func TestUpsertPrependsNewDates(t *testing.T) {
	ledger, _ := newTestLedger(t)
	monday := NewDate(2025, time.June, 2)

	first := mustEntry(t, monday, 100)
	if result, err := ledger.Upsert(first); err != nil || result != Created {
		t.Fatalf("Upsert = (%v, %v), want (Created, nil)", result, err)
	}
	second := mustEntry(t, monday.Add(1), 200)
	if result, err := ledger.Upsert(second); err != nil || result != Created {
		t.Fatalf("Upsert = (%v, %v), want (Created, nil)", result, err)
	}

	entries := ledger.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Newest save first.
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Errorf("entries are not newest-first: %d, %d", entries[0].ID, entries[1].ID)
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	ledger, _ := newTestLedger(t)
	monday := NewDate(2025, time.June, 2)

	ledger.Upsert(mustEntry(t, monday, 100))
	ledger.Upsert(mustEntry(t, monday.Add(1), 200))

	// Re-recording monday replaces the old entry but keeps its position.
	replacement := mustEntry(t, monday, 999)
	result, err := ledger.Upsert(replacement)
	if err != nil || result != Replaced {
		t.Fatalf("Upsert = (%v, %v), want (Replaced, nil)", result, err)
	}

	entries := ledger.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: one entry per date", len(entries))
	}
	if entries[1].Sales != 999 {
		t.Errorf("replaced entry moved or kept old values: %+v", entries[1])
	}
}

func TestRemove(t *testing.T) {
	ledger, _ := newTestLedger(t)
	entry := mustEntry(t, NewDate(2025, time.June, 2), 100)
	ledger.Upsert(entry)

	removed, err := ledger.Remove(entry.ID)
	if err != nil || !removed {
		t.Fatalf("Remove = (%v, %v), want (true, nil)", removed, err)
	}
	if len(ledger.Entries()) != 0 {
		t.Error("entry is still in the ledger")
	}

	// Removing again reports that nothing matched.
	removed, err = ledger.Remove(entry.ID)
	if err != nil {
		t.Fatalf("second Remove failed: %v", err)
	}
	if removed {
		t.Error("second Remove claimed a removal")
	}
}

func TestClear(t *testing.T) {
	ledger, store := newTestLedger(t)
	ledger.Upsert(mustEntry(t, NewDate(2025, time.June, 2), 100))
	ledger.Upsert(mustEntry(t, NewDate(2025, time.June, 3), 200))

	if err := ledger.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if len(ledger.Entries()) != 0 {
		t.Error("ledger is not empty after Clear")
	}
	// The persistent mirror is cleared too, not just the memory.
	if payload := store.values[StorageKey]; payload != "[]" {
		t.Errorf("stored payload = %q, want %q", payload, "[]")
	}
}

func TestFindByDate(t *testing.T) {
	ledger, _ := newTestLedger(t)
	monday := NewDate(2025, time.June, 2)
	entry := mustEntry(t, monday, 100)
	ledger.Upsert(entry)

	if got, ok := ledger.FindByDate(monday); !ok || got.ID != entry.ID {
		t.Errorf("FindByDate(%v) = (%+v, %v)", monday, got, ok)
	}
	if _, ok := ledger.FindByDate(monday.Add(1)); ok {
		t.Error("FindByDate found an entry for an unrecorded date")
	}
}

func TestLoadIgnoresCorruptPayload(t *testing.T) {
	store := newMemStore()
	store.values[StorageKey] = "{not json"

	ledger := NewLedger(store)
	if err := ledger.Load(); err != nil {
		t.Fatalf("Load failed on a corrupt payload: %v", err)
	}
	if len(ledger.Entries()) != 0 {
		t.Error("corrupt payload produced entries")
	}
}

func TestLedgerPersistsThroughFileStore(t *testing.T) {
	dir := t.TempDir()
	entry := mustEntry(t, NewDate(2025, time.June, 2), 1500000)

	ledger := NewLedger(NewFileStore(dir))
	if err := ledger.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := ledger.Upsert(entry); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	// A fresh ledger on the same directory sees the saved entry.
	reloaded := NewLedger(NewFileStore(dir))
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, ok := reloaded.Find(entry.ID)
	if !ok {
		t.Fatal("saved entry not found after reload")
	}
	if got.Sales != 1500000 || got.Date != entry.Date {
		t.Errorf("reloaded entry = %+v", got)
	}
}
