package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Tiliavir/trivial-calendar/internal/calendar"
	"github.com/Tiliavir/trivial-calendar/internal/config"
	"github.com/Tiliavir/trivial-calendar/internal/filter"
	appLog "github.com/Tiliavir/trivial-calendar/internal/log"
	"github.com/Tiliavir/trivial-calendar/internal/nav"
	"github.com/Tiliavir/trivial-calendar/internal/storage"
)

// nowFunc is replaced in tests.
var nowFunc = time.Now

// app bundles what every command needs: configuration, the entry store and
// the filter set, all backed by the configured KV.
type app struct {
	cfg     *config.Config
	loc     *time.Location
	store   *storage.EntryStore
	filters *filter.Set
	closer  io.Closer
}

// openApp loads config and both snapshots. A corrupt snapshot is reported
// and replaced by an empty one; an unreadable store exits with code 2.
func openApp() *app {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	appLog.SetLevel(appLog.ParseLevel(cfg.LogLevel))

	loc, err := cfg.Location()
	if err != nil {
		exitUser(err)
	}

	dir := cfg.DataDir
	if dir == "" {
		if dir, err = storage.BaseDir(); err != nil {
			exitStorage(err)
		}
	}

	a := &app{cfg: cfg, loc: loc}
	var kv storage.KV
	switch cfg.Storage {
	case config.StorageSQLite:
		if err := os.MkdirAll(dir, 0o700); err != nil {
			exitStorage(fmt.Errorf("storage error creating directories: %w", err))
		}
		db, err := storage.OpenSQLite(filepath.Join(dir, "tcal.db"))
		if err != nil {
			exitStorage(err)
		}
		kv, a.closer = db, db
	default:
		kv = storage.NewFileKV(dir)
	}
	appLog.Debug("storage opened", "backend", cfg.Storage, "dir", dir)

	a.store = storage.NewEntryStore(kv)
	if _, err := a.store.Load(); err != nil {
		switch {
		case errors.Is(err, storage.ErrSkippedEntries):
			fmt.Fprintf(os.Stderr, "Warning: %v (backup kept as %s.corrupt)\n", err, storage.KeyEntries)
		case errors.Is(err, storage.ErrCorruptSnapshot):
			fmt.Fprintf(os.Stderr, "Warning: %v; starting with an empty calendar (backup kept as %s.corrupt)\n", err, storage.KeyEntries)
		default:
			exitStorage(err)
		}
	}

	a.filters, err = filter.Load(kv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using default filters\n", err)
	}
	return a
}

func (a *app) Close() {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			appLog.Error("closing storage", err)
		}
	}
}

// now is the current time in the configured timezone.
func (a *app) now() time.Time {
	return nowFunc().In(a.loc)
}

// board builds a calendar board for view; callers must Close it.
func (a *app) board(view nav.ViewState) *calendar.Board {
	return calendar.NewBoard(a.store, a.filters, view, a.now)
}

func exitUser(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func exitStorage(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}
