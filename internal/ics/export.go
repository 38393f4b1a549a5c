// Package ics writes calendar entries as an iCalendar document.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/Tiliavir/trivial-calendar/internal/meeting"
	"github.com/Tiliavir/trivial-calendar/internal/model"
)

const productID = "-//Tiliavir//tcal//EN"

// Export returns one VEVENT per entry. stamp becomes DTSTAMP on every event.
func Export(entries []model.Entry, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range entries {
		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End())
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		ev.AddProperty(ical.ComponentPropertyCategories, string(e.Category()))

		switch d := e.Details.(type) {
		case model.MeetingDetails:
			if d.Link != "" && d.Link != meeting.NoLink {
				ev.SetURL(d.Link)
			}
		case model.TaskDetails:
			if d.Assignee != "" {
				ev.AddProperty(ical.ComponentPropertyComment, "Assigned to "+d.Assignee)
			}
		}
	}
	return cal.Serialize()
}
