package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-calendar/internal/nav"
	"github.com/Tiliavir/trivial-calendar/internal/render"
)

var (
	showDate string
	showNext int
	showPrev int
)

var showCmd = &cobra.Command{
	Use:       "show [month|week|day]",
	Short:     "Draw the calendar for a month, week or day",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"month", "week", "day"},
	RunE:      runShow,
}

func init() {
	showCmd.Flags().StringVar(&showDate, "date", "", "Anchor date YYYY-MM-DD (default today)")
	showCmd.Flags().IntVar(&showNext, "next", 0, "Move forward this many periods")
	showCmd.Flags().IntVar(&showPrev, "prev", 0, "Move back this many periods")
}

func runShow(cmd *cobra.Command, args []string) error {
	g := nav.Month
	if len(args) == 1 {
		var err error
		if g, err = nav.ParseGranularity(args[0]); err != nil {
			exitUser(err)
		}
	}

	a := openApp()
	defer a.Close()

	view, err := anchoredView(a, showDate, g)
	if err != nil {
		exitUser(err)
	}

	b := a.board(view)
	defer b.Close()
	for i := 0; i < showNext; i++ {
		b.Next()
	}
	for i := 0; i < showPrev; i++ {
		b.Previous()
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Layout(b.Layout(), render.DefaultStyles()))
	return nil
}

// anchoredView anchors g at date, or at now when date is empty.
func anchoredView(a *app, date string, g nav.Granularity) (nav.ViewState, error) {
	now := a.now()
	view := nav.SetGranularity(nav.New(now), g)
	if date == "" {
		return view, nil
	}
	day, err := parseDate(date, a.loc, now)
	if err != nil {
		return view, err
	}
	view.Anchor = day
	return view, nil
}
