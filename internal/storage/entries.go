package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	appLog "github.com/Tiliavir/trivial-calendar/internal/log"
	"github.com/Tiliavir/trivial-calendar/internal/model"
)

var (
	// ErrCorruptSnapshot wraps every decode failure of the entries snapshot.
	ErrCorruptSnapshot = errors.New("corrupt entries snapshot")
	// ErrSkippedEntries reports records that were dropped on load while the
	// rest of the snapshot was kept.
	ErrSkippedEntries  = errors.New("invalid entries skipped")
	ErrDuplicateID     = errors.New("entry id already exists")
	ErrCategoryChanged = errors.New("entry category cannot change")
)

// corruptSuffix names the key that keeps the raw bytes of an unreadable
// snapshot so the next save does not destroy them.
const corruptSuffix = ".corrupt"

// EntryStore holds the calendar entries in insertion order and writes the
// whole collection back to its KV after every mutation.
type EntryStore struct {
	kv      KV
	entries []model.Entry
}

func NewEntryStore(kv KV) *EntryStore {
	return &EntryStore{kv: kv}
}

// Load reads the persisted snapshot and makes it the in-memory collection.
// A missing snapshot yields no entries. A snapshot that is not a JSON array
// yields no entries and an error wrapping ErrCorruptSnapshot. Single records
// that fail to decode or validate are dropped and the others kept; the error
// then wraps ErrSkippedEntries. In both failure cases the raw bytes are
// copied aside first and the caller may keep going.
func (s *EntryStore) Load() ([]model.Entry, error) {
	s.entries = []model.Entry{}

	data, ok, err := s.kv.Get(KeyEntries)
	if err != nil {
		appLog.Error("entries snapshot unreadable", err, "key", KeyEntries)
		return s.Entries(), err
	}
	if !ok || len(data) == 0 {
		return s.Entries(), nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		appLog.Error("entries snapshot corrupt; starting empty", err, "key", KeyEntries, "bytes", len(data))
		s.backup(data)
		return s.Entries(), fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	loaded := make([]model.Entry, 0, len(records))
	skipped := 0
	for i, raw := range records {
		var e model.Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			appLog.Warn("skipping invalid entry", "key", KeyEntries, "index", i, "err", err)
			skipped++
			continue
		}
		loaded = append(loaded, e)
	}
	s.entries = loaded
	appLog.Debug("entries loaded", "count", len(loaded), "skipped", skipped)

	if skipped > 0 {
		s.backup(data)
		return s.Entries(), fmt.Errorf("%w: %d of %d", ErrSkippedEntries, skipped, len(records))
	}
	return s.Entries(), nil
}

// backup keeps the raw snapshot so the next save does not destroy records
// that could not be loaded.
func (s *EntryStore) backup(data []byte) {
	if err := s.kv.Set(KeyEntries+corruptSuffix, data); err != nil {
		appLog.Error("could not back up entries snapshot", err, "key", KeyEntries+corruptSuffix)
	}
}

// Entries returns a copy of the collection in enumeration order.
func (s *EntryStore) Entries() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the first entry with the given id.
func (s *EntryStore) Get(id string) (model.Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.Entry{}, false
}

// SaveAll overwrites the persisted snapshot with the current collection.
func (s *EntryStore) SaveAll() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	if err := s.kv.Set(KeyEntries, data); err != nil {
		appLog.Error("entries snapshot not saved", err, "count", len(s.entries))
		return err
	}
	return nil
}

// Add appends a new entry and saves.
func (s *EntryStore) Add(e model.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, exists := s.Get(e.ID); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	s.entries = append(s.entries, e)
	return s.SaveAll()
}

// Remove deletes every entry with the given id and saves. A missing id is a
// no-op.
func (s *EntryStore) Remove(id string) error {
	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.entries) {
		return nil
	}
	s.entries = kept
	return s.SaveAll()
}

// Replace swaps the entry carrying e.ID for e, keeping its position, and
// saves. Any further entries with the same id are dropped so exactly one
// remains. A missing id is a no-op.
func (s *EntryStore) Replace(e model.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if cur, ok := s.Get(e.ID); ok && cur.Category() != e.Category() {
		return fmt.Errorf("%w: %s is a %s", ErrCategoryChanged, e.ID, cur.Category())
	}

	replaced := false
	kept := make([]model.Entry, 0, len(s.entries))
	for _, cur := range s.entries {
		if cur.ID != e.ID {
			kept = append(kept, cur)
			continue
		}
		if !replaced {
			kept = append(kept, e)
			replaced = true
		}
	}
	if !replaced {
		return nil
	}
	s.entries = kept
	return s.SaveAll()
}
