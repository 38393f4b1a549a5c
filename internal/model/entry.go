package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category is the kind of a calendar entry. It is fixed at creation.
type Category string

const (
	CategoryTask    Category = "Task"
	CategoryEvent   Category = "Event"
	CategoryMeeting Category = "Meeting"
)

// ParseCategory accepts the category name in any case.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "task":
		return CategoryTask, nil
	case "event":
		return CategoryEvent, nil
	case "meeting":
		return CategoryMeeting, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Source tells where an entry came from. Outlook and Gmail are placeholders
// for sync integrations that do not exist yet.
type Source string

const (
	SourceLocal   Source = "local"
	SourceOutlook Source = "outlook"
	SourceGmail   Source = "gmail"
)

// ParseSource maps a source name to a Source; empty means local.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "local":
		return SourceLocal, nil
	case "outlook":
		return SourceOutlook, nil
	case "gmail":
		return SourceGmail, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
}

var (
	ErrUnknownCategory = errors.New("unknown entry category")
	ErrUnknownSource   = errors.New("unknown entry source")
	ErrEmptyID         = errors.New("entry id is empty")
	ErrEmptyTitle      = errors.New("entry title is empty")
	ErrMissingStart    = errors.New("entry start is missing")
	ErrInvertedRange   = errors.New("event ends before it starts")
	ErrBadDuration     = errors.New("meeting duration must be positive")
	ErrMissingDetails  = errors.New("entry has no category details")
)

// Details holds the category specific fields of an entry. The set of
// implementations is closed: TaskDetails, EventDetails and MeetingDetails.
type Details interface {
	Category() Category
	isDetails()
}

// TaskDetails are the fields only a Task carries.
type TaskDetails struct {
	Assignee string
}

// EventDetails are the fields only an Event carries.
type EventDetails struct {
	End time.Time
}

// MeetingDetails are the fields only a Meeting carries. Link is derived from
// the platform when the meeting is created.
type MeetingDetails struct {
	DurationMinutes int
	Platform        string
	Link            string
}

func (TaskDetails) Category() Category    { return CategoryTask }
func (EventDetails) Category() Category   { return CategoryEvent }
func (MeetingDetails) Category() Category { return CategoryMeeting }

func (TaskDetails) isDetails()    {}
func (EventDetails) isDetails()   {}
func (MeetingDetails) isDetails() {}

// Entry is a single calendar entry. Start is the instant used for all
// bucketing.
type Entry struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	Source      Source
	Details     Details
}

// NewTask builds and validates a Task entry.
func NewTask(id, title, description string, start time.Time, assignee string) (Entry, error) {
	e := Entry{
		ID:          id,
		Title:       title,
		Description: description,
		Start:       start,
		Source:      SourceLocal,
		Details:     TaskDetails{Assignee: assignee},
	}
	return e, e.Validate()
}

// NewEvent builds and validates an Event entry.
func NewEvent(id, title, description string, start, end time.Time) (Entry, error) {
	e := Entry{
		ID:          id,
		Title:       title,
		Description: description,
		Start:       start,
		Source:      SourceLocal,
		Details:     EventDetails{End: end},
	}
	return e, e.Validate()
}

// NewMeeting builds and validates a Meeting entry.
func NewMeeting(id, title, description string, start time.Time, durationMinutes int, platform, link string) (Entry, error) {
	e := Entry{
		ID:          id,
		Title:       title,
		Description: description,
		Start:       start,
		Source:      SourceLocal,
		Details: MeetingDetails{
			DurationMinutes: durationMinutes,
			Platform:        platform,
			Link:            link,
		},
	}
	return e, e.Validate()
}

// Category returns the category implied by the entry's details, or "" if
// the entry has none.
func (e Entry) Category() Category {
	if e.Details == nil {
		return ""
	}
	return e.Details.Category()
}

// End returns when the entry is over: the event end, the meeting start plus
// its duration, or the start itself for tasks.
func (e Entry) End() time.Time {
	switch d := e.Details.(type) {
	case EventDetails:
		return d.End
	case MeetingDetails:
		return e.Start.Add(time.Duration(d.DurationMinutes) * time.Minute)
	default:
		return e.Start
	}
}

// Validate checks the common fields and the category specific ones.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if e.Start.IsZero() {
		return ErrMissingStart
	}
	if _, err := ParseSource(string(e.Source)); err != nil {
		return err
	}

	switch d := e.Details.(type) {
	case TaskDetails:
		return nil
	case EventDetails:
		if d.End.IsZero() || d.End.Before(e.Start) {
			return fmt.Errorf("%w: start %s, end %s", ErrInvertedRange,
				e.Start.Format(time.RFC3339), d.End.Format(time.RFC3339))
		}
		return nil
	case MeetingDetails:
		if d.DurationMinutes <= 0 {
			return fmt.Errorf("%w: %d", ErrBadDuration, d.DurationMinutes)
		}
		return nil
	case nil:
		return ErrMissingDetails
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCategory, d)
	}
}

// record is the persisted layout of an entry: one flat object with the
// category specific fields left out when they do not apply.
type record struct {
	ID          string     `json:"id"`
	Type        Category   `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	Platform    *string    `json:"platform,omitempty"`
	MeetingLink *string    `json:"meetingLink,omitempty"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
	Source      Source     `json:"source,omitempty"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	r := record{
		ID:          e.ID,
		Type:        e.Category(),
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Start,
		Source:      e.Source,
	}
	switch d := e.Details.(type) {
	case TaskDetails:
		r.AssignedTo = &d.Assignee
	case EventDetails:
		r.EndDate = &d.End
	case MeetingDetails:
		r.Duration = &d.DurationMinutes
		r.Platform = &d.Platform
		r.MeetingLink = &d.Link
	default:
		return nil, ErrMissingDetails
	}
	return json.Marshal(r)
}

// UnmarshalJSON decodes a persisted record. Fields that do not belong to the
// record's type are ignored; the result is validated.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	category, err := ParseCategory(string(r.Type))
	if err != nil {
		return err
	}
	source, err := ParseSource(string(r.Source))
	if err != nil {
		return err
	}

	out := Entry{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Start:       r.Date,
		Source:      source,
	}
	switch category {
	case CategoryTask:
		out.Details = TaskDetails{Assignee: deref(r.AssignedTo)}
	case CategoryEvent:
		var end time.Time
		if r.EndDate != nil {
			end = *r.EndDate
		}
		out.Details = EventDetails{End: end}
	case CategoryMeeting:
		var dur int
		if r.Duration != nil {
			dur = *r.Duration
		}
		out.Details = MeetingDetails{
			DurationMinutes: dur,
			Platform:        deref(r.Platform),
			Link:            deref(r.MeetingLink),
		}
	}

	if err := out.Validate(); err != nil {
		return fmt.Errorf("entry %q: %w", r.ID, err)
	}
	*e = out
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
