// Package render draws a calendar layout as terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Tiliavir/trivial-calendar/internal/calendar"
	"github.com/Tiliavir/trivial-calendar/internal/grid"
	"github.com/Tiliavir/trivial-calendar/internal/model"
)

const (
	cellWidth     = 16
	cellLines     = 3
	hourWidth     = 6
	previewLength = 30
)

// Styles controls how the pieces of a layout look.
type Styles struct {
	Header  lipgloss.Style
	Weekday lipgloss.Style
	Cell    lipgloss.Style
	Outside lipgloss.Style
	Today   lipgloss.Style
	Hour    lipgloss.Style
	Empty   lipgloss.Style

	Task    lipgloss.Style
	Event   lipgloss.Style
	Meeting lipgloss.Style
}

func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().Width(cellWidth).Border(lipgloss.NormalBorder())
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Weekday: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true).Width(cellWidth + 2).Align(lipgloss.Center),
		Cell:    cell,
		Outside: cell.Foreground(lipgloss.Color("244")).Faint(true),
		Today:   cell.BorderForeground(lipgloss.Color("63")).Bold(true).Underline(true),
		Hour:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(hourWidth),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),

		Task:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Event:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Meeting: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	}
}

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Layout renders the header followed by the month or hour grid.
func Layout(l calendar.Layout, s Styles) string {
	var body string
	switch {
	case l.Month != nil:
		body = Month(*l.Month, s)
	case l.Hours != nil:
		body = Hours(*l.Hours, s)
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.Header.Render(l.Header), body)
}

// Month renders a month grid, one bordered cell per day.
func Month(m grid.Month, s Styles) string {
	header := make([]string, 0, len(weekdays))
	for _, d := range weekdays {
		header = append(header, s.Weekday.Render(d))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for _, week := range m.Weeks() {
		cells := make([]string, 0, len(week))
		for _, d := range week {
			cells = append(cells, dayCell(d, s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func dayCell(d grid.Day, s Styles) string {
	lines := []string{fmt.Sprintf("%2d", d.Date.Day())}
	for i, e := range d.Entries {
		if i == cellLines-1 && len(d.Entries) > cellLines {
			lines = append(lines, s.Empty.Render(fmt.Sprintf("+%d more", len(d.Entries)-i)))
			break
		}
		lines = append(lines, Badge(e, cellWidth, s))
	}
	for len(lines) < cellLines+1 {
		lines = append(lines, "")
	}

	style := s.Cell
	switch {
	case d.IsToday:
		style = s.Today
	case !d.InCurrentMonth:
		style = s.Outside
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Hours renders a week or day grid: one row per slot hour, one column per day.
func Hours(h grid.Hours, s Styles) string {
	header := []string{s.Hour.Render("")}
	for _, c := range h.Columns {
		label := c.Date.Format("Mon 1/2")
		if c.IsToday {
			label += " *"
		}
		header = append(header, s.Weekday.Render(label))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for i, hour := range grid.SlotHours() {
		cells := []string{s.Hour.Render(fmt.Sprintf("%02d:00", hour))}
		for _, c := range h.Columns {
			var lines []string
			for _, e := range c.Slots[i].Entries {
				lines = append(lines, Badge(e, cellWidth+2, s))
			}
			if len(lines) == 0 {
				lines = []string{s.Empty.Render("·")}
			}
			cells = append(cells, lipgloss.NewStyle().Width(cellWidth+2).Render(strings.Join(lines, "\n")))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Badge is the one-line label of an entry, cut to width cells.
func Badge(e model.Entry, width int, s Styles) string {
	text := runewidth.Truncate(marker(e.Category())+" "+e.Title, width, "…")
	switch e.Category() {
	case model.CategoryTask:
		return s.Task.Render(text)
	case model.CategoryEvent:
		return s.Event.Render(text)
	default:
		return s.Meeting.Render(text)
	}
}

func marker(c model.Category) string {
	switch c {
	case model.CategoryTask:
		return "☐"
	case model.CategoryEvent:
		return "◆"
	case model.CategoryMeeting:
		return "●"
	}
	return "?"
}

// Preview shortens a description to its first 30 characters.
func Preview(description string) string {
	r := []rune(description)
	if len(r) <= previewLength {
		return description
	}
	return string(r[:previewLength]) + "..."
}
