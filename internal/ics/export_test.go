package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/Tiliavir/trivial-calendar/internal/model"
)

func TestExportRoundTrip(t *testing.T) {
	start := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)
	mtg, err := model.NewMeeting("m1", "Standup", "daily sync", start, 30, "zoom", "https://zoom.us/j/123")
	if err != nil {
		t.Fatal(err)
	}
	ev, err := model.NewEvent("e1", "Offsite", "", start.AddDate(0, 0, 1), start.AddDate(0, 0, 2))
	if err != nil {
		t.Fatal(err)
	}

	out := Export([]model.Entry{mtg, ev}, start)

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseCalendar: %v\n%s", err, out)
	}
	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	first := events[0]
	if p := first.GetProperty(ical.ComponentPropertyUniqueId); p == nil || p.Value != "m1" {
		t.Errorf("UID = %v", p)
	}
	if p := first.GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "Standup" {
		t.Errorf("SUMMARY = %v", p)
	}
	if p := first.GetProperty(ical.ComponentPropertyCategories); p == nil || p.Value != "Meeting" {
		t.Errorf("CATEGORIES = %v", p)
	}
	if p := first.GetProperty(ical.ComponentPropertyUrl); p == nil || p.Value != "https://zoom.us/j/123" {
		t.Errorf("URL = %v", p)
	}
	gotStart, err := first.GetStartAt()
	if err != nil || !gotStart.Equal(start) {
		t.Errorf("DTSTART = %v, %v", gotStart, err)
	}
	gotEnd, err := first.GetEndAt()
	if err != nil || !gotEnd.Equal(start.Add(30*time.Minute)) {
		t.Errorf("DTEND = %v, %v", gotEnd, err)
	}

	if p := events[1].GetProperty(ical.ComponentPropertyDescription); p != nil {
		t.Errorf("empty description exported as %q", p.Value)
	}
}

func TestExportEmpty(t *testing.T) {
	out := Export(nil, time.Now())
	if !strings.Contains(out, "BEGIN:VCALENDAR") || strings.Contains(out, "BEGIN:VEVENT") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
