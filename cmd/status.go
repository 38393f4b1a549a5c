package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/nav"
	"github.com/Tiliavir/trivial-calendar/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's entries and what comes next",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	a := openApp()
	defer a.Close()
	now := a.now()

	b := a.board(nav.SetGranularity(nav.New(now), nav.Day))
	defer b.Close()
	visible := b.Visible()
	w := cmd.OutOrStdout()

	midnight := timecalc.StartOfDay(now)
	today := between(visible, midnight, midnight.AddDate(0, 0, 1))
	fmt.Fprintln(w, nav.HeaderLabel(b.View()))
	if len(today) == 0 {
		fmt.Fprintln(w, "  Nothing scheduled today.")
	}
	for _, e := range today {
		fmt.Fprintf(w, "  %s  %s%s\n", timeSpan(e, a.loc), e.Title, details(e, a.loc))
	}

	if next, ok := nextEntry(visible, now); ok {
		fmt.Fprintf(w, "Next: %s %q on %s at %s\n", next.Category(), next.Title,
			next.Start.In(a.loc).Format(dateLayout), next.Start.In(a.loc).Format(clockLayout))
	} else {
		fmt.Fprintln(w, "Nothing upcoming.")
	}
	return nil
}

// nextEntry returns the earliest entry starting after now.
func nextEntry(entries []model.Entry, now time.Time) (model.Entry, bool) {
	var next model.Entry
	found := false
	for _, e := range entries {
		if e.Start.After(now) && (!found || e.Start.Before(next.Start)) {
			next, found = e, true
		}
	}
	return next, found
}
