package calendar_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/trivial-calendar/internal/calendar"
	"github.com/Tiliavir/trivial-calendar/internal/filter"
	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/nav"
	"github.com/Tiliavir/trivial-calendar/internal/storage"
)

var now = time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return now }

func newBoard(t *testing.T, g nav.Granularity) (*calendar.Board, *filter.Set) {
	t.Helper()
	kv := storage.NewFileKV(t.TempDir())
	store := storage.NewEntryStore(kv)
	if _, err := store.Load(); err != nil {
		t.Fatal(err)
	}

	task, err := model.NewTask("t1", "Write report", "", now.Add(5*time.Hour+30*time.Minute), "")
	if err != nil {
		t.Fatal(err)
	}
	mtg, err := model.NewMeeting("m1", "Standup", "", now.Add(time.Hour), 15, "zoom", "")
	if err != nil {
		t.Fatal(err)
	}
	synced, err := model.NewTask("o1", "From outlook", "", now.Add(2*time.Hour), "")
	if err != nil {
		t.Fatal(err)
	}
	synced.Source = model.SourceOutlook
	for _, e := range []model.Entry{task, mtg, synced} {
		if err := store.Add(e); err != nil {
			t.Fatal(err)
		}
	}

	filters, err := filter.Load(kv)
	if err != nil {
		t.Fatal(err)
	}
	b := calendar.NewBoard(store, filters, nav.ViewState{Anchor: now, Granularity: g}, fixedNow)
	t.Cleanup(b.Close)
	return b, filters
}

func TestLayoutMonth(t *testing.T) {
	b, _ := newBoard(t, nav.Month)
	l := b.Layout()
	if l.Month == nil || l.Hours != nil {
		t.Fatalf("month view produced %+v", l)
	}
	if l.Header != "March 2025" {
		t.Errorf("Header = %q", l.Header)
	}
	if n := l.Month.Count(); n != 2 {
		t.Errorf("Count = %d, want 2 (outlook entry hidden)", n)
	}
}

func TestLayoutWeekAfterToggle(t *testing.T) {
	b, filters := newBoard(t, nav.Week)

	var got []calendar.Layout
	b.OnChange(func(l calendar.Layout) { got = append(got, l) })

	if err := filters.Toggle(model.FlagMeetings); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("OnChange called %d times, want 1", len(got))
	}
	l := got[0]
	if l.Hours == nil || len(l.Hours.Columns) != 7 {
		t.Fatalf("week layout = %+v", l)
	}
	if n := l.Hours.Count(); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
	slot := l.Hours.Columns[6].Slots[14-8]
	if len(slot.Entries) != 1 || slot.Entries[0].ID != "t1" {
		t.Errorf("Saturday 14:00 = %+v", slot)
	}
}

func TestNavigationNotifies(t *testing.T) {
	b, _ := newBoard(t, nav.Day)

	var headers []string
	b.OnChange(func(l calendar.Layout) { headers = append(headers, l.Header) })

	b.Next()
	b.SetGranularity(nav.Month)
	b.Previous()
	b.Today()

	want := []string{
		"Sunday, March 16, 2025",
		"March 2025",
		"February 2025",
		"March 2025",
	}
	if len(headers) != len(want) {
		t.Fatalf("headers = %v", headers)
	}
	for i := range want {
		if headers[i] != want[i] {
			t.Errorf("headers[%d] = %q, want %q", i, headers[i], want[i])
		}
	}
	if b.View().Granularity != nav.Month {
		t.Errorf("granularity = %s", b.View().Granularity)
	}
}

func TestCloseStopsNotifications(t *testing.T) {
	b, filters := newBoard(t, nav.Month)
	calls := 0
	b.OnChange(func(calendar.Layout) { calls++ })
	b.Close()
	if err := filters.Toggle(model.FlagTasks); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("OnChange called %d times after Close", calls)
	}
}
