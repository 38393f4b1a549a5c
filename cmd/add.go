package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Tiliavir/trivial-calendar/internal/meeting"
	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/timecalc"
)

var (
	addTitle    string
	addDesc     string
	addDate     string
	addTime     string
	addSource   string
	addAssignee string
	addEndDate  string
	addEndTime  string
	addDuration int
	addPlatform string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task, event or meeting",
}

var addTaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Add a task",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

var addEventCmd = &cobra.Command{
	Use:   "event",
	Short: "Add an event with an end time",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

var addMeetingCmd = &cobra.Command{
	Use:   "meeting",
	Short: "Add a meeting with a duration and platform",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	for _, c := range []*cobra.Command{addTaskCmd, addEventCmd, addMeetingCmd} {
		commonEntryFlags(c.Flags(), &addTitle, &addDesc, &addDate, &addTime)
		c.Flags().StringVar(&addSource, "source", "local", "Origin of the entry: local, outlook, gmail")
		_ = c.MarkFlagRequired("title")
		addCmd.AddCommand(c)
	}
	addTaskCmd.Flags().StringVar(&addAssignee, "assignee", "", "Person the task is assigned to")
	addEventCmd.Flags().StringVar(&addEndDate, "end-date", "", "End date YYYY-MM-DD (default start date)")
	addEventCmd.Flags().StringVar(&addEndTime, "end-time", "", "End time HH:MM (default one hour after start)")
	addMeetingCmd.Flags().IntVar(&addDuration, "duration", 0, "Duration in minutes (default from config)")
	addMeetingCmd.Flags().StringVar(&addPlatform, "platform", "", "zoom, teams or other (default from config)")
}

func commonEntryFlags(fs *pflag.FlagSet, title, desc, date, clock *string) {
	fs.StringVar(title, "title", "", "Title")
	fs.StringVar(desc, "desc", "", "Description")
	fs.StringVar(date, "date", "", "Date YYYY-MM-DD (default today)")
	fs.StringVar(clock, "time", "09:00", "Start time HH:MM")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a := openApp()
	defer a.Close()
	now := a.now()

	start, err := parseDateTime(addDate, addTime, a.loc, now)
	if err != nil {
		exitUser(err)
	}
	source, err := model.ParseSource(addSource)
	if err != nil {
		exitUser(err)
	}

	id := timecalc.GenerateID(nowFunc())
	var entry model.Entry
	switch cmd.Name() {
	case "task":
		entry, err = model.NewTask(id, addTitle, addDesc, start, addAssignee)
	case "event":
		var end time.Time
		if end, err = eventEnd(start, addEndDate, addEndTime, a); err == nil {
			entry, err = model.NewEvent(id, addTitle, addDesc, start, end)
		}
	case "meeting":
		duration := addDuration
		if !cmd.Flags().Changed("duration") {
			duration = a.cfg.Meeting.DefaultDuration
		}
		platform := addPlatform
		if platform == "" {
			platform = a.cfg.Meeting.DefaultPlatform
		}
		if err = positiveMinutes(duration); err == nil {
			entry, err = model.NewMeeting(id, addTitle, addDesc, start, duration, platform, meeting.Link(platform, addTitle, start))
		}
	}
	if err != nil {
		exitUser(err)
	}
	entry.Source = source

	if err := a.store.Add(entry); err != nil {
		exitStorage(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q on %s at %s [%s]\n",
		entry.Category(), entry.Title, start.Format(dateLayout), start.Format(clockLayout), entry.ID)
	return nil
}

// eventEnd resolves the --end-date/--end-time flags; both default relative
// to start.
func eventEnd(start time.Time, date, clock string, a *app) (time.Time, error) {
	if date == "" && clock == "" {
		return start.Add(time.Hour), nil
	}
	if date == "" {
		date = start.Format(dateLayout)
	}
	if clock == "" {
		clock = start.Format(clockLayout)
	}
	return parseDateTime(date, clock, a.loc, start)
}
