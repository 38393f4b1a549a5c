package grid

import (
	"time"

	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/timecalc"
)

// Day is one cell of the month view.
type Day struct {
	Date           time.Time
	InCurrentMonth bool
	IsToday        bool
	Entries        []model.Entry
}

// Month is the month view: whole Sunday-to-Saturday weeks covering the
// anchor's month, so len(Days) is a multiple of 7 between 28 and 42.
type Month struct {
	Anchor time.Time
	Days   []Day
}

// BuildMonth lays out the month containing anchor and puts every entry in
// the cell of its start day.
func BuildMonth(anchor time.Time, entries []model.Entry, now time.Time) Month {
	loc := anchor.Location()
	first, last := timecalc.MonthGridRange(anchor)
	index := byDay(entries, loc)
	today := now.In(loc)

	dates := timecalc.Days(first, last)
	m := Month{Anchor: anchor, Days: make([]Day, 0, len(dates))}
	for _, d := range dates {
		m.Days = append(m.Days, Day{
			Date:           d,
			InCurrentMonth: timecalc.SameMonth(d, anchor),
			IsToday:        timecalc.SameDay(d, today),
			Entries:        index[keyOf(d)],
		})
	}
	return m
}

// Weeks splits the grid into rows of seven days.
func (m Month) Weeks() [][]Day {
	weeks := make([][]Day, 0, len(m.Days)/7)
	for i := 0; i+7 <= len(m.Days); i += 7 {
		weeks = append(weeks, m.Days[i:i+7])
	}
	return weeks
}

// Count returns the number of entries placed in the grid.
func (m Month) Count() int {
	n := 0
	for _, d := range m.Days {
		n += len(d.Entries)
	}
	return n
}
