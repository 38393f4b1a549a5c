// Package nav holds the calendar's view state: which date is anchored and at
// what granularity, plus the moves between periods.
package nav

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tiliavir/trivial-calendar/internal/timecalc"
)

// Granularity is the span a view covers.
type Granularity int

const (
	Month Granularity = iota
	Week
	Day
)

var ErrUnknownGranularity = errors.New("unknown view")

func (g Granularity) String() string {
	switch g {
	case Month:
		return "month"
	case Week:
		return "week"
	case Day:
		return "day"
	}
	return fmt.Sprintf("Granularity(%d)", int(g))
}

// ParseGranularity accepts "month", "week" or "day" in any case.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month":
		return Month, nil
	case "week":
		return Week, nil
	case "day":
		return Day, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
}

// ViewState is the anchored date and granularity. It is a value; every move
// returns a new state.
type ViewState struct {
	Anchor      time.Time
	Granularity Granularity
}

// New returns a month view anchored at now.
func New(now time.Time) ViewState {
	return ViewState{Anchor: now, Granularity: Month}
}

// Next moves one period forward. Month steps use calendar arithmetic, so
// Jan 31 moves to Mar 3 (Mar 2 in leap years).
func Next(v ViewState) ViewState {
	return step(v, 1)
}

// Previous moves one period back.
func Previous(v ViewState) ViewState {
	return step(v, -1)
}

func step(v ViewState, n int) ViewState {
	switch v.Granularity {
	case Month:
		v.Anchor = timecalc.AddMonths(v.Anchor, n)
	case Week:
		v.Anchor = v.Anchor.AddDate(0, 0, 7*n)
	default:
		v.Anchor = v.Anchor.AddDate(0, 0, n)
	}
	return v
}

// Today re-anchors on now and keeps the granularity.
func Today(v ViewState, now time.Time) ViewState {
	v.Anchor = now
	return v
}

// SetGranularity switches the view and keeps the anchor.
func SetGranularity(v ViewState, g Granularity) ViewState {
	v.Granularity = g
	return v
}

// HeaderLabel is the title shown above the grid.
func HeaderLabel(v ViewState) string {
	switch v.Granularity {
	case Month:
		return v.Anchor.Format("January 2006")
	case Week:
		first, last := timecalc.WeekRange(v.Anchor)
		return weekLabel(first, last)
	default:
		return v.Anchor.Format("Monday, January 2, 2006")
	}
}

func weekLabel(first, last time.Time) string {
	switch {
	case first.Year() != last.Year():
		return first.Format("Jan 2, 2006") + " - " + last.Format("Jan 2, 2006")
	case first.Month() != last.Month():
		return first.Format("Jan 2") + " - " + last.Format("Jan 2, 2006")
	default:
		return first.Format("Jan 2") + " - " + last.Format("2, 2006")
	}
}
