package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-calendar/internal/ics"
	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/nav"
)

var (
	exportFormat string
	exportView   string
	exportDate   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the displayed entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md, ics")
	exportCmd.Flags().StringVar(&exportView, "view", "week", "Period to export: month, week, day")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Reference date YYYY-MM-DD (default today)")
}

func runExport(cmd *cobra.Command, args []string) error {
	g, err := nav.ParseGranularity(exportView)
	if err != nil {
		exitUser(err)
	}

	a := openApp()
	defer a.Close()

	view, err := anchoredView(a, exportDate, g)
	if err != nil {
		exitUser(err)
	}
	b := a.board(view)
	defer b.Close()

	from, to := viewRange(view)
	entries := between(b.Visible(), from, to)
	w := cmd.OutOrStdout()

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			exitStorage(fmt.Errorf("error encoding JSON: %w", err))
		}
		fmt.Fprintln(w, string(data))
	case "md":
		printList(w, entries, a.loc)
	case "ics":
		fmt.Fprint(w, ics.Export(entries, a.now()))
	case "csv":
		printCSV(w, entries, a.loc)
	default:
		exitUser(fmt.Errorf("unknown format %q: expected csv, json, md or ics", exportFormat))
	}
	return nil
}

func printCSV(w io.Writer, entries []model.Entry, loc *time.Location) {
	fmt.Fprintln(w, "id,type,date,start,end,title,description,source,assignee,duration_minutes,platform,link")
	for _, e := range entries {
		var assignee, duration, platform, link string
		switch d := e.Details.(type) {
		case model.TaskDetails:
			assignee = d.Assignee
		case model.MeetingDetails:
			duration = fmt.Sprint(d.DurationMinutes)
			platform = d.Platform
			link = d.Link
		}
		start := e.Start.In(loc)
		fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			csvEscape(e.ID),
			e.Category(),
			start.Format(dateLayout),
			csvEscape(start.Format(time.RFC3339)),
			csvEscape(e.End().In(loc).Format(time.RFC3339)),
			csvEscape(e.Title),
			csvEscape(e.Description),
			e.Source,
			csvEscape(assignee),
			duration,
			csvEscape(platform),
			csvEscape(link),
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
