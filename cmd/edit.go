package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-calendar/internal/meeting"
	"github.com/Tiliavir/trivial-calendar/internal/model"
)

var (
	editTitle    string
	editDesc     string
	editDate     string
	editTime     string
	editAssignee string
	editEndDate  string
	editEndTime  string
	editDuration int
	editPlatform string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change an existing entry",
	Long: `Change the fields given as flags and keep the rest. The category of an
entry cannot change; delete it and add a new one instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editFlags(editCmd)
}

func editFlags(c *cobra.Command) {
	commonEntryFlags(c.Flags(), &editTitle, &editDesc, &editDate, &editTime)
	c.Flags().StringVar(&editAssignee, "assignee", "", "Task assignee")
	c.Flags().StringVar(&editEndDate, "end-date", "", "Event end date YYYY-MM-DD")
	c.Flags().StringVar(&editEndTime, "end-time", "", "Event end time HH:MM")
	c.Flags().IntVar(&editDuration, "duration", 0, "Meeting duration in minutes")
	c.Flags().StringVar(&editPlatform, "platform", "", "Meeting platform")
}

func runEdit(cmd *cobra.Command, args []string) error {
	a := openApp()
	defer a.Close()

	current, ok := a.store.Get(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "No entry with id %q.\n", args[0])
		os.Exit(1)
	}

	updated, err := applyEdits(cmd, current, a.loc)
	if err != nil {
		exitUser(err)
	}
	if err := a.store.Replace(updated); err != nil {
		exitStorage(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %q [%s]\n", updated.Category(), updated.Title, updated.ID)
	return nil
}

// applyEdits returns e with every changed flag applied and validated.
func applyEdits(cmd *cobra.Command, e model.Entry, loc *time.Location) (model.Entry, error) {
	changed := cmd.Flags().Changed
	start := e.Start.In(loc)

	if changed("title") {
		e.Title = editTitle
	}
	if changed("desc") {
		e.Description = editDesc
	}
	if changed("date") || changed("time") {
		date, clock := start.Format(dateLayout), start.Format(clockLayout)
		if changed("date") {
			date = editDate
		}
		if changed("time") {
			clock = editTime
		}
		t, err := parseDateTime(date, clock, loc, start)
		if err != nil {
			return e, err
		}
		e.Start = t
	}

	switch d := e.Details.(type) {
	case model.TaskDetails:
		if changed("assignee") {
			d.Assignee = editAssignee
		}
		e.Details = d
	case model.EventDetails:
		// Moving the start keeps the event's length unless a new end is given.
		end := e.Start.Add(d.End.Sub(start))
		if changed("end-date") || changed("end-time") {
			oldEnd := d.End.In(loc)
			date, clock := oldEnd.Format(dateLayout), oldEnd.Format(clockLayout)
			if changed("end-date") {
				date = editEndDate
			}
			if changed("end-time") {
				clock = editEndTime
			}
			t, err := parseDateTime(date, clock, loc, oldEnd)
			if err != nil {
				return e, err
			}
			end = t
		}
		d.End = end
		e.Details = d
	case model.MeetingDetails:
		if changed("duration") {
			if err := positiveMinutes(editDuration); err != nil {
				return e, err
			}
			d.DurationMinutes = editDuration
		}
		if changed("platform") {
			d.Platform = editPlatform
		}
		if changed("platform") || changed("title") || !e.Start.Equal(start) {
			d.Link = meeting.Link(d.Platform, e.Title, e.Start)
		}
		e.Details = d
	}

	for _, flag := range []string{"assignee", "end-date", "end-time", "duration", "platform"} {
		if changed(flag) && !appliesTo(flag, e.Category()) {
			return e, fmt.Errorf("--%s does not apply to a %s", flag, e.Category())
		}
	}
	return e, e.Validate()
}

func appliesTo(flag string, c model.Category) bool {
	switch flag {
	case "assignee":
		return c == model.CategoryTask
	case "end-date", "end-time":
		return c == model.CategoryEvent
	case "duration", "platform":
		return c == model.CategoryMeeting
	}
	return true
}
