package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-calendar/internal/meeting"
	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/nav"
	"github.com/Tiliavir/trivial-calendar/internal/render"
	"github.com/Tiliavir/trivial-calendar/internal/timecalc"
)

var (
	listToday bool
	listWeek  bool
	listMonth bool
	listDate  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List calendar entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listToday, "today", false, "Show the day's entries (default)")
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Show the week's entries")
	listCmd.Flags().BoolVar(&listMonth, "month", false, "Show the month's entries")
	listCmd.Flags().StringVar(&listDate, "date", "", "Reference date YYYY-MM-DD (default today)")
	listCmd.MarkFlagsMutuallyExclusive("today", "week", "month")
}

func runList(cmd *cobra.Command, args []string) error {
	a := openApp()
	defer a.Close()

	g := nav.Day
	switch {
	case listWeek:
		g = nav.Week
	case listMonth:
		g = nav.Month
	}
	view, err := anchoredView(a, listDate, g)
	if err != nil {
		exitUser(err)
	}

	b := a.board(view)
	defer b.Close()
	from, to := viewRange(view)
	printList(cmd.OutOrStdout(), between(b.Visible(), from, to), a.loc)
	return nil
}

// viewRange is the half-open span [from, to) a view covers.
func viewRange(v nav.ViewState) (time.Time, time.Time) {
	switch v.Granularity {
	case nav.Month:
		from := timecalc.StartOfMonth(v.Anchor)
		return from, from.AddDate(0, 1, 0)
	case nav.Week:
		from := timecalc.StartOfWeek(v.Anchor)
		return from, from.AddDate(0, 0, 7)
	default:
		from := timecalc.StartOfDay(v.Anchor)
		return from, from.AddDate(0, 0, 1)
	}
}

// printList groups entries by date and prints them.
func printList(w io.Writer, entries []model.Entry, loc *time.Location) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	var currentDay string
	for _, e := range entries {
		start := e.Start.In(loc)
		day := start.Format("2006-01-02 Mon")
		if day != currentDay {
			fmt.Fprintln(w, day)
			currentDay = day
		}
		fmt.Fprintf(w, "  %s  %-8s %s%s  [%s]\n", timeSpan(e, loc), e.Category(), e.Title, details(e, loc), e.ID)
		if e.Description != "" {
			fmt.Fprintf(w, "         %s\n", render.Preview(e.Description))
		}
	}
}

func timeSpan(e model.Entry, loc *time.Location) string {
	start := e.Start.In(loc)
	if e.Category() == model.CategoryTask {
		return start.Format(clockLayout) + "      "
	}
	return start.Format(clockLayout) + "–" + e.End().In(loc).Format(clockLayout)
}

func details(e model.Entry, loc *time.Location) string {
	var s string
	switch d := e.Details.(type) {
	case model.TaskDetails:
		if d.Assignee != "" {
			s = " @" + d.Assignee
		}
	case model.EventDetails:
		if !timecalc.SameDay(e.Start.In(loc), d.End.In(loc)) {
			s = " (until " + d.End.In(loc).Format("2006-01-02 15:04") + ")"
		}
	case model.MeetingDetails:
		s = fmt.Sprintf(" (%s, %s)", formatMinutes(d.DurationMinutes), d.Platform)
		if d.Link != "" && d.Link != meeting.NoLink {
			s += " " + d.Link
		}
	}
	if e.Source != model.SourceLocal {
		s += " <" + string(e.Source) + ">"
	}
	return s
}
