package grid

import (
	"time"

	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/timecalc"
)

// Slot is one hour row of a column.
type Slot struct {
	Hour    int
	Entries []model.Entry
}

// Column is one day of the week or day view.
type Column struct {
	Date    time.Time
	IsToday bool
	Slots   []Slot
}

// Hours is the week view (seven columns, Sunday first) or the day view (one
// column).
type Hours struct {
	Anchor  time.Time
	Columns []Column
}

// BuildWeek lays out the Sunday-to-Saturday week containing anchor.
func BuildWeek(anchor time.Time, entries []model.Entry, now time.Time) Hours {
	sunday := timecalc.StartOfWeek(anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = sunday.AddDate(0, 0, i)
	}
	return buildHours(anchor, days, entries, now)
}

// BuildDay lays out the single day containing anchor.
func BuildDay(anchor time.Time, entries []model.Entry, now time.Time) Hours {
	return buildHours(anchor, []time.Time{timecalc.StartOfDay(anchor)}, entries, now)
}

func buildHours(anchor time.Time, days []time.Time, entries []model.Entry, now time.Time) Hours {
	loc := anchor.Location()
	index := byDay(entries, loc)
	today := now.In(loc)

	h := Hours{Anchor: anchor, Columns: make([]Column, 0, len(days))}
	for _, d := range days {
		col := Column{
			Date:    d,
			IsToday: timecalc.SameDay(d, today),
			Slots:   make([]Slot, 0, LastHour-FirstHour+1),
		}
		for _, hour := range SlotHours() {
			col.Slots = append(col.Slots, Slot{Hour: hour})
		}
		for _, e := range index[keyOf(d)] {
			hour := e.Start.In(loc).Hour()
			if hour < FirstHour || hour > LastHour {
				continue
			}
			slot := &col.Slots[hour-FirstHour]
			slot.Entries = append(slot.Entries, e)
		}
		h.Columns = append(h.Columns, col)
	}
	return h
}

// Count returns the number of entries placed in the grid.
func (h Hours) Count() int {
	n := 0
	for _, c := range h.Columns {
		for _, s := range c.Slots {
			n += len(s.Entries)
		}
	}
	return n
}
