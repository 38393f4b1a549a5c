package model

import (
	"errors"
	"fmt"
	"strings"
)

// Flag names one of the five filter toggles.
type Flag string

const (
	FlagTasks    Flag = "tasks"
	FlagMeetings Flag = "meetings"
	FlagEvents   Flag = "events"
	FlagOutlook  Flag = "outlook"
	FlagGmail    Flag = "gmail"
)

// Flags lists every toggle in display order.
var Flags = []Flag{FlagTasks, FlagMeetings, FlagEvents, FlagOutlook, FlagGmail}

var ErrUnknownFlag = errors.New("unknown filter flag")

func ParseFlag(s string) (Flag, error) {
	f := Flag(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Flags {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFlag, s)
}

// FilterState holds the category and source toggles. Its JSON layout is the
// persisted calendarFilters record.
type FilterState struct {
	Tasks    bool `json:"tasks"`
	Meetings bool `json:"meetings"`
	Events   bool `json:"events"`
	Outlook  bool `json:"outlook"`
	Gmail    bool `json:"gmail"`
}

// DefaultFilterState shows every category and hides the placeholder sources.
func DefaultFilterState() FilterState {
	return FilterState{
		Tasks:    true,
		Meetings: true,
		Events:   true,
		Outlook:  false,
		Gmail:    false,
	}
}

// Enabled reports the value of a single toggle.
func (s FilterState) Enabled(f Flag) bool {
	switch f {
	case FlagTasks:
		return s.Tasks
	case FlagMeetings:
		return s.Meetings
	case FlagEvents:
		return s.Events
	case FlagOutlook:
		return s.Outlook
	case FlagGmail:
		return s.Gmail
	}
	return false
}

// With returns a copy of s with toggle f set to on.
func (s FilterState) With(f Flag, on bool) FilterState {
	switch f {
	case FlagTasks:
		s.Tasks = on
	case FlagMeetings:
		s.Meetings = on
	case FlagEvents:
		s.Events = on
	case FlagOutlook:
		s.Outlook = on
	case FlagGmail:
		s.Gmail = on
	}
	return s
}

// CategoryFlag returns the toggle that governs a category.
func CategoryFlag(c Category) (Flag, bool) {
	switch c {
	case CategoryTask:
		return FlagTasks, true
	case CategoryMeeting:
		return FlagMeetings, true
	case CategoryEvent:
		return FlagEvents, true
	}
	return "", false
}

// SourceFlag returns the toggle that governs a source. Local entries have
// none.
func SourceFlag(s Source) (Flag, bool) {
	switch s {
	case SourceOutlook:
		return FlagOutlook, true
	case SourceGmail:
		return FlagGmail, true
	}
	return "", false
}
