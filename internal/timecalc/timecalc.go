package timecalc

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"
)

// GenerateID creates a unique entry ID based on timestamp and random suffix.
func GenerateID(t time.Time) string {
	return generateID(t, rand.Reader)
}

const idChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateID falls back to a suffix derived from t's nanoseconds when r
// fails.
func generateID(t time.Time, r io.Reader) string {
	suffix := make([]byte, 5)
	for i := range suffix {
		n, err := rand.Int(r, big.NewInt(int64(len(idChars))))
		if err != nil {
			return fmt.Sprintf("%s-%s", t.Format("20060102-150405"), clockSuffix(t))
		}
		suffix[i] = idChars[n.Int64()]
	}
	return fmt.Sprintf("%s-%s", t.Format("20060102-150405"), string(suffix))
}

func clockSuffix(t time.Time) string {
	n := t.UnixNano()
	if n < 0 {
		n = -n
	}
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = idChars[n%int64(len(idChars))]
		n /= int64(len(idChars))
	}
	return string(suffix)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether two times fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// StartOfWeek returns 00:00 of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// WeekRange returns the Sunday 00:00:00 and Saturday 23:59:59 of the week
// containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	sunday := StartOfWeek(t)
	return sunday, EndOfDay(sunday.AddDate(0, 0, 6))
}

// StartOfMonth returns 00:00 of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns 23:59:59 of the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}

// MonthGridRange returns the Sunday starting the week of the first of t's
// month and the Saturday ending the week of its last day, both at 00:00.
func MonthGridRange(t time.Time) (time.Time, time.Time) {
	first := StartOfWeek(StartOfMonth(t))
	lastDay := StartOfDay(EndOfMonth(t))
	last := lastDay.AddDate(0, 0, 6-int(lastDay.Weekday()))
	return first, last
}

// AddMonths shifts t by n calendar months keeping the day of month and the
// wall clock. Days that do not exist in the target month roll over into the
// following one: Jan 31 + 1 month is Mar 3 (Mar 2 in leap years).
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// Days lists 00:00 of every day in [from, to], both taken as calendar days.
func Days(from, to time.Time) []time.Time {
	var days []time.Time
	last := StartOfDay(to)
	for d := StartOfDay(from); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
