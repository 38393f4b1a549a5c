package timecalc_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/trivial-calendar/internal/timecalc"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekRange(t *testing.T) {
	// 2025-03-15 is a Saturday.
	sat := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	sunday, saturday := timecalc.WeekRange(sat)

	wantSunday := day(2025, 3, 9)
	wantSaturday := time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC)

	if !sunday.Equal(wantSunday) {
		t.Errorf("WeekRange sunday = %v, want %v", sunday, wantSunday)
	}
	if !saturday.Equal(wantSaturday) {
		t.Errorf("WeekRange saturday = %v, want %v", saturday, wantSaturday)
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	sun := time.Date(2025, 3, 2, 18, 0, 0, 0, time.UTC)
	if got := timecalc.StartOfWeek(sun); !got.Equal(day(2025, 3, 2)) {
		t.Errorf("StartOfWeek(Sunday) = %v, want same day", got)
	}
}

func TestMonthGridRange(t *testing.T) {
	tests := []struct {
		anchor      time.Time
		first, last time.Time
	}{
		// March 2025 starts on a Saturday and ends on a Monday.
		{day(2025, 3, 15), day(2025, 2, 23), day(2025, 4, 5)},
		{day(2025, 4, 15), day(2025, 3, 30), day(2025, 5, 3)},
		// February 2026 starts on a Sunday and ends on a Saturday.
		{day(2026, 2, 10), day(2026, 2, 1), day(2026, 2, 28)},
	}
	for _, tt := range tests {
		first, last := timecalc.MonthGridRange(tt.anchor)
		if !first.Equal(tt.first) || !last.Equal(tt.last) {
			t.Errorf("MonthGridRange(%s) = %s..%s, want %s..%s",
				tt.anchor.Format("2006-01-02"),
				first.Format("2006-01-02"), last.Format("2006-01-02"),
				tt.first.Format("2006-01-02"), tt.last.Format("2006-01-02"))
		}
	}
}

func TestAddMonthsRollover(t *testing.T) {
	tests := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{day(2025, 1, 31), 1, day(2025, 3, 3)},
		{day(2024, 1, 31), 1, day(2024, 3, 2)},
		{day(2025, 3, 31), -1, day(2025, 3, 3)},
		{day(2025, 12, 15), 1, day(2026, 1, 15)},
		{day(2025, 1, 15), -1, day(2024, 12, 15)},
	}
	for _, tt := range tests {
		if got := timecalc.AddMonths(tt.in, tt.n); !got.Equal(tt.want) {
			t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.in.Format("2006-01-02"), tt.n,
				got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
		}
	}
}

func TestDays(t *testing.T) {
	days := timecalc.Days(time.Date(2025, 3, 30, 15, 0, 0, 0, time.UTC), day(2025, 4, 2))
	if len(days) != 4 {
		t.Fatalf("Days len = %d, want 4", len(days))
	}
	if !days[0].Equal(day(2025, 3, 30)) || !days[3].Equal(day(2025, 4, 2)) {
		t.Errorf("Days = %v..%v", days[0], days[3])
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}

func TestGenerateID(t *testing.T) {
	ts := time.Date(2026, 2, 27, 8, 32, 10, 0, time.UTC)
	id := timecalc.GenerateID(ts)
	if len(id) != len("20260227-083210-xxxxx") {
		t.Errorf("GenerateID length = %d, want %d", len(id), len("20260227-083210-xxxxx"))
	}
	if id[:15] != "20260227-083210" {
		t.Errorf("GenerateID prefix = %q, want %q", id[:15], "20260227-083210")
	}
}
