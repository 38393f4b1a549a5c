// Package calendar combines the entry store, the filter set and the view
// state into the layout a frontend draws.
package calendar

import (
	"time"

	"github.com/Tiliavir/trivial-calendar/internal/filter"
	"github.com/Tiliavir/trivial-calendar/internal/grid"
	appLog "github.com/Tiliavir/trivial-calendar/internal/log"
	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/nav"
)

// Source supplies the entries to lay out.
type Source interface {
	Entries() []model.Entry
}

// Layout is everything needed to draw one screen. Exactly one of Month and
// Hours is set.
type Layout struct {
	View   nav.ViewState
	Header string
	Month  *grid.Month
	Hours  *grid.Hours
}

// Board recomputes the layout whenever the filters or the view change.
type Board struct {
	source  Source
	filters *filter.Set
	view    nav.ViewState
	now     func() time.Time

	onChange    func(Layout)
	unsubscribe func()
}

// NewBoard starts in the given view. now is consulted for "today" on every
// layout; nil means time.Now.
func NewBoard(source Source, filters *filter.Set, view nav.ViewState, now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}
	b := &Board{source: source, filters: filters, view: view, now: now}
	b.unsubscribe = filters.Subscribe(func(model.FilterState) { b.changed() })
	return b
}

// OnChange registers fn to receive a fresh layout after every filter change
// or navigation step. A later call replaces the earlier hook.
func (b *Board) OnChange(fn func(Layout)) {
	b.onChange = fn
}

// View returns the current view state.
func (b *Board) View() nav.ViewState {
	return b.view
}

// Visible returns the store's entries that pass the current filters.
func (b *Board) Visible() []model.Entry {
	return filter.Apply(b.source.Entries(), b.filters.State())
}

// Layout computes the layout for the current view.
func (b *Board) Layout() Layout {
	entries := b.Visible()
	now := b.now()
	l := Layout{View: b.view, Header: nav.HeaderLabel(b.view)}

	switch b.view.Granularity {
	case nav.Month:
		m := grid.BuildMonth(b.view.Anchor, entries, now)
		l.Month = &m
	case nav.Week:
		h := grid.BuildWeek(b.view.Anchor, entries, now)
		l.Hours = &h
	default:
		h := grid.BuildDay(b.view.Anchor, entries, now)
		l.Hours = &h
	}
	appLog.Debug("layout computed", "view", b.view.Granularity, "anchor", b.view.Anchor.Format("2006-01-02"), "entries", len(entries))
	return l
}

func (b *Board) Next() {
	b.move(nav.Next(b.view))
}

func (b *Board) Previous() {
	b.move(nav.Previous(b.view))
}

func (b *Board) Today() {
	b.move(nav.Today(b.view, b.now()))
}

func (b *Board) SetGranularity(g nav.Granularity) {
	b.move(nav.SetGranularity(b.view, g))
}

func (b *Board) move(v nav.ViewState) {
	b.view = v
	b.changed()
}

func (b *Board) changed() {
	if b.onChange != nil {
		b.onChange(b.Layout())
	}
}

// Close stops listening to filter changes.
func (b *Board) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}
