package storage_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/storage"
)

func task(t *testing.T, id, title string, start time.Time) model.Entry {
	t.Helper()
	e, err := model.NewTask(id, title, "", start, "")
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	return e
}

var day = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func TestLoadMissingSnapshot(t *testing.T) {
	store := storage.NewEntryStore(storage.NewFileKV(t.TempDir()))
	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load on empty store: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load entries = %d, want 0", len(entries))
	}
}

func TestLoadNotJSON(t *testing.T) {
	kv := storage.NewFileKV(t.TempDir())
	if err := kv.Set(storage.KeyEntries, []byte("not json")); err != nil {
		t.Fatal(err)
	}

	store := storage.NewEntryStore(kv)
	entries, err := store.Load()
	if !errors.Is(err, storage.ErrCorruptSnapshot) {
		t.Fatalf("Load err = %v, want ErrCorruptSnapshot", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("Load entries = %v, want empty sequence", entries)
	}

	// The raw bytes are kept aside.
	backup, ok, err := kv.Get(storage.KeyEntries + ".corrupt")
	if err != nil || !ok || string(backup) != "not json" {
		t.Errorf("backup = %q, %v, %v", backup, ok, err)
	}
}

func TestLoadSkipsInvalidRecords(t *testing.T) {
	kv := storage.NewFileKV(t.TempDir())
	snapshot := `[
  {"id":"1","type":"Task","title":"Keep me","description":"","date":"2025-03-15T09:00:00.000Z","source":"local"},
  {"id":"2","type":"Event","title":"Backwards","description":"","date":"2025-03-15T12:00:00.000Z","endDate":"2025-03-15T10:00:00.000Z"},
  {"id":"3","type":"Task","title":"Me too","description":"","date":"2025-03-16T09:00:00.000Z"}
]`
	if err := kv.Set(storage.KeyEntries, []byte(snapshot)); err != nil {
		t.Fatal(err)
	}

	store := storage.NewEntryStore(kv)
	entries, err := store.Load()
	if !errors.Is(err, storage.ErrSkippedEntries) {
		t.Fatalf("Load err = %v, want ErrSkippedEntries", err)
	}
	if errors.Is(err, storage.ErrCorruptSnapshot) {
		t.Errorf("partial load reported as corrupt snapshot: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != "1" || entries[1].ID != "3" {
		t.Fatalf("Load entries = %v, want ids 1 and 3", entries)
	}

	backup, ok, err := kv.Get(storage.KeyEntries + ".corrupt")
	if err != nil || !ok || string(backup) != snapshot {
		t.Errorf("backup = %q, %v, %v", backup, ok, err)
	}

	// Saving after a partial load keeps the valid records.
	if err := store.Add(task(t, "4", "New", day)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	reloaded, err := storage.NewEntryStore(kv).Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded) != 3 {
		t.Errorf("reloaded %d entries, want 3", len(reloaded))
	}
}

func TestAddSaveLoad(t *testing.T) {
	kv := storage.NewFileKV(t.TempDir())
	store := storage.NewEntryStore(kv)

	if err := store.Add(task(t, "a", "First", day)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	ev, err := model.NewEvent("b", "Second", "offsite", day, day.Add(2*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Add(ev); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add(task(t, "a", "Again", day)); !errors.Is(err, storage.ErrDuplicateID) {
		t.Errorf("Add duplicate err = %v, want ErrDuplicateID", err)
	}

	reloaded := storage.NewEntryStore(kv)
	entries, err := reloaded.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Load entries = %d, want 2", len(entries))
	}
	if entries[0].ID != "a" || entries[1].ID != "b" {
		t.Errorf("order = %s,%s; want a,b", entries[0].ID, entries[1].ID)
	}
	d, ok := entries[1].Details.(model.EventDetails)
	if !ok || !d.End.Equal(day.Add(2*time.Hour)) {
		t.Errorf("event details = %#v", entries[1].Details)
	}
	if !entries[0].Start.Equal(day) {
		t.Errorf("start = %v, want %v", entries[0].Start, day)
	}
}

func TestReplaceCollapsesDuplicateIDs(t *testing.T) {
	kv := storage.NewFileKV(t.TempDir())
	// Two entries share id "x" in a hand-edited snapshot.
	raw := `[
		{"id":"x","type":"Task","title":"old one","description":"","date":"2025-03-15T09:00:00Z","source":"local"},
		{"id":"y","type":"Task","title":"other","description":"","date":"2025-03-15T10:00:00Z","source":"local"},
		{"id":"x","type":"Task","title":"old two","description":"","date":"2025-03-15T11:00:00Z","source":"local"}
	]`
	if err := kv.Set(storage.KeyEntries, []byte(raw)); err != nil {
		t.Fatal(err)
	}
	store := storage.NewEntryStore(kv)
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := store.Replace(task(t, "x", "new", day)); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	var xs []model.Entry
	for _, e := range store.Entries() {
		if e.ID == "x" {
			xs = append(xs, e)
		}
	}
	if len(xs) != 1 {
		t.Fatalf("entries with id x = %d, want 1", len(xs))
	}
	if xs[0].Title != "new" {
		t.Errorf("title = %q, want %q", xs[0].Title, "new")
	}
	if got := store.Entries(); got[0].ID != "x" || got[1].ID != "y" {
		t.Errorf("position not kept: %s,%s", got[0].ID, got[1].ID)
	}
}

func TestReplaceKeepsCategory(t *testing.T) {
	store := storage.NewEntryStore(storage.NewFileKV(t.TempDir()))
	if err := store.Add(task(t, "a", "Task", day)); err != nil {
		t.Fatal(err)
	}
	ev, err := model.NewEvent("a", "Now an event", "", day, day)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Replace(ev); !errors.Is(err, storage.ErrCategoryChanged) {
		t.Errorf("Replace err = %v, want ErrCategoryChanged", err)
	}
}

func TestMissingIDIsNoop(t *testing.T) {
	kv := storage.NewFileKV(t.TempDir())
	store := storage.NewEntryStore(kv)
	if err := store.Add(task(t, "a", "Keep", day)); err != nil {
		t.Fatal(err)
	}

	if err := store.Remove("nope"); err != nil {
		t.Errorf("Remove missing: %v", err)
	}
	if err := store.Replace(task(t, "nope", "Ghost", day)); err != nil {
		t.Errorf("Replace missing: %v", err)
	}
	if n := len(store.Entries()); n != 1 {
		t.Errorf("entries = %d, want 1", n)
	}

	if err := store.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	reloaded := storage.NewEntryStore(kv)
	entries, err := reloaded.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("after Remove entries = %d, want 0", len(entries))
	}
}
