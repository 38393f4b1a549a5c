// Package grid assigns entries to the cells of the month, week and day
// views. All functions are pure: the same anchor, entries and "now" always
// produce the same grid.
//
// Bucketing happens in the anchor's location. Within a cell entries keep the
// order they were passed in.
package grid

import (
	"time"

	"github.com/Tiliavir/trivial-calendar/internal/model"
)

// Week and day views show one slot per hour from FirstHour to LastHour
// inclusive. Entries starting outside that window are not placed in those
// views at all; the month view still lists them.
const (
	FirstHour = 8
	LastHour  = 20
)

// SlotHours lists the hours shown in week and day views.
func SlotHours() []int {
	hours := make([]int, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// dayKey identifies a calendar day independent of the time of day.
type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{y, m, d}
}

// byDay groups entries by the calendar day of their start in loc.
func byDay(entries []model.Entry, loc *time.Location) map[dayKey][]model.Entry {
	index := make(map[dayKey][]model.Entry)
	for _, e := range entries {
		k := keyOf(e.Start.In(loc))
		index[k] = append(index[k], e)
	}
	return index
}
