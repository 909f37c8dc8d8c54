package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/kcal/internal/model"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := model.ParseTimestamp(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

// ledgerOf files each entry under its own date.
func ledgerOf(t *testing.T, entries ...model.FoodEntry) model.Ledger {
	t.Helper()
	l := model.NewLedger()
	for _, e := range entries {
		date := e.Time.DateKey()
		d := l[date]
		d.Append(e)
		l[date] = d
	}
	return l
}

func food(t *testing.T, name string, cal int, ts string) model.FoodEntry {
	t.Helper()
	return model.FoodEntry{Name: name, Calories: cal, Time: model.At(mustTime(t, ts))}
}

func TestDailyTotal(t *testing.T) {
	l := ledgerOf(t,
		food(t, "Apple", 95, "2024-01-01T08:00"),
		food(t, "Toast", 150, "2024-01-01T08:05"),
	)
	if got := DailyTotal(l, "2024-01-01"); got != 245 {
		t.Fatalf("DailyTotal = %d, want 245", got)
	}
	if got := DailyTotal(l, "2024-01-02"); got != 0 {
		t.Fatalf("DailyTotal missing day = %d, want 0", got)
	}
}

func TestWeekDates(t *testing.T) {
	days := WeekDates(mustTime(t, "2024-03-02T00:10"))
	if len(days) != 7 {
		t.Fatalf("len = %d, want 7", len(days))
	}
	want := []string{"2024-02-25", "2024-02-26", "2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	for i, d := range days {
		if got := model.DateKey(d); got != want[i] {
			t.Errorf("day %d = %s, want %s", i, got, want[i])
		}
	}
}

func TestWeeklyTotal(t *testing.T) {
	l := ledgerOf(t,
		food(t, "Too old", 1000, "2024-01-01T09:00"),
		food(t, "Window start", 100, "2024-01-02T09:00"),
		food(t, "Mid", 200, "2024-01-05T09:00"),
		food(t, "Ref day", 300, "2024-01-08T21:00"),
		food(t, "Future", 5000, "2024-01-09T09:00"),
	)
	if got := WeeklyTotal(l, mustTime(t, "2024-01-08T10:00")); got != 600 {
		t.Fatalf("WeeklyTotal = %d, want 600", got)
	}
}

func TestWeeklyTotalEmptyWindow(t *testing.T) {
	l := ledgerOf(t, food(t, "Old", 500, "2023-06-01T09:00"))
	if got := WeeklyTotal(l, mustTime(t, "2024-01-08T10:00")); got != 0 {
		t.Fatalf("WeeklyTotal = %d, want 0", got)
	}
	if got := WeeklyTotal(model.NewLedger(), time.Now()); got != 0 {
		t.Fatalf("WeeklyTotal on empty ledger = %d, want 0", got)
	}
}

func TestSummarize(t *testing.T) {
	l := ledgerOf(t,
		food(t, "Oats", 300, "2024-01-06T08:00"),
		food(t, "Apple", 95, "2024-01-08T08:00"),
		food(t, "Toast", 150, "2024-01-08T08:05"),
	)
	s := Summarize(l, mustTime(t, "2024-01-08T12:00"), 2000)

	if s.Date != "2024-01-08" || s.Today != 245 || s.TodayEntries != 2 {
		t.Fatalf("today = %+v", s)
	}
	if s.Week != 545 || s.ActiveDays != 2 || s.DailyAverage != 272 {
		t.Fatalf("week = %+v", s)
	}
	if s.Remaining != 1755 {
		t.Fatalf("Remaining = %d, want 1755", s.Remaining)
	}
	if p := s.GoalProgress(); p <= 0.12 || p >= 0.13 {
		t.Fatalf("GoalProgress = %f, want ~0.1225", p)
	}

	noGoal := Summarize(model.NewLedger(), mustTime(t, "2024-01-08T12:00"), 0)
	if noGoal.GoalProgress() != 0 || noGoal.Remaining != 0 || noGoal.DailyAverage != 0 {
		t.Fatalf("empty summary = %+v", noGoal)
	}
}
