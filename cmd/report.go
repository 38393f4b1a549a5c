package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/nav"
)

var (
	reportFormat string
	reportDate   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarise the week's entries per category",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Any date in the week YYYY-MM-DD (default today)")
}

// summary counts entries per category; meetings also sum their minutes.
type summary struct {
	Week           string `json:"week"`
	Tasks          int    `json:"tasks"`
	Events         int    `json:"events"`
	Meetings       int    `json:"meetings"`
	MeetingMinutes int    `json:"meeting_minutes"`
	Total          int    `json:"total"`
}

func summarize(label string, entries []model.Entry) summary {
	s := summary{Week: label, Total: len(entries)}
	for _, e := range entries {
		switch d := e.Details.(type) {
		case model.TaskDetails:
			s.Tasks++
		case model.EventDetails:
			s.Events++
		case model.MeetingDetails:
			s.Meetings++
			s.MeetingMinutes += d.DurationMinutes
		}
	}
	return s
}

func runReport(cmd *cobra.Command, args []string) error {
	a := openApp()
	defer a.Close()

	view, err := anchoredView(a, reportDate, nav.Week)
	if err != nil {
		exitUser(err)
	}
	b := a.board(view)
	defer b.Close()

	from, to := viewRange(view)
	s := summarize(nav.HeaderLabel(view), between(b.Visible(), from, to))
	if err := printReport(cmd.OutOrStdout(), s, reportFormat); err != nil {
		exitUser(err)
	}
	return nil
}

func printReport(w io.Writer, s summary, format string) error {
	switch format {
	case "csv":
		fmt.Fprintln(w, "category,count,minutes")
		fmt.Fprintf(w, "%s,%d,\n", model.CategoryTask, s.Tasks)
		fmt.Fprintf(w, "%s,%d,\n", model.CategoryEvent, s.Events)
		fmt.Fprintf(w, "%s,%d,%d\n", model.CategoryMeeting, s.Meetings, s.MeetingMinutes)
	case "json":
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	case "md":
		fmt.Fprintf(w, "Week %s\n", s.Week)
		fmt.Fprintln(w, "--------------------------------")
		fmt.Fprintf(w, "%-20s%d\n", "Tasks", s.Tasks)
		fmt.Fprintf(w, "%-20s%d\n", "Events", s.Events)
		fmt.Fprintf(w, "%-20s%d (%s)\n", "Meetings", s.Meetings, formatMinutes(s.MeetingMinutes))
		fmt.Fprintln(w, "--------------------------------")
		fmt.Fprintf(w, "%-20s%d\n", "Total", s.Total)
	default:
		return fmt.Errorf("unknown format %q: expected md, csv or json", format)
	}
	return nil
}
