package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Tiliavir/trivial-calendar/internal/storage"
)

func testKVRoundTrip(t *testing.T, kv storage.KV) {
	t.Helper()

	if _, ok, err := kv.Get(storage.KeyFilters); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v; want missing", ok, err)
	}

	if err := kv.Set(storage.KeyFilters, []byte(`{"tasks":false}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set(storage.KeyFilters, []byte(`{"tasks":true}`)); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}

	got, ok, err := kv.Get(storage.KeyFilters)
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok %v, err %v", ok, err)
	}
	if string(got) != `{"tasks":true}` {
		t.Errorf("Get = %s, want last written value", got)
	}
}

func TestFileKV(t *testing.T) {
	dir := t.TempDir()
	testKVRoundTrip(t, storage.NewFileKV(dir))

	if _, err := os.Stat(filepath.Join(dir, "calendarFilters.json")); err != nil {
		t.Errorf("expected snapshot file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "calendarFilters.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind after atomic write")
	}
}

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tcal.db")
	kv, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	testKVRoundTrip(t, kv)
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening must keep the data and skip the migration.
	kv, err = storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv.Close()
	got, ok, err := kv.Get(storage.KeyFilters)
	if err != nil || !ok || string(got) != `{"tasks":true}` {
		t.Errorf("after reopen Get = %s, %v, %v", got, ok, err)
	}
}
