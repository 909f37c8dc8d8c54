// Package pipeline derives totals and chart series from the calorie ledger.
// Everything here is a pure function of the ledger and a reference time.
package pipeline

import (
	"time"

	"github.com/theirongolddev/kcal/internal/model"
)

// WeekDays is the length of the trailing window.
const WeekDays = 7

// DailyTotal returns the stored total for date, or 0.
func DailyTotal(l model.Ledger, date string) int {
	return l[date].TotalCalories
}

// WeekDates returns the 7 calendar days ending at ref, oldest first.
// Days are pinned to local noon so DST shifts never skip or repeat a date.
func WeekDates(ref time.Time) []time.Time {
	ref = ref.Local()
	y, m, d := ref.Date()
	dates := make([]time.Time, WeekDays)
	for i := range dates {
		dates[i] = time.Date(y, m, d-(WeekDays-1-i), 12, 0, 0, 0, time.Local)
	}
	return dates
}

// WeeklyTotal sums DailyTotal over the 7 days ending at ref inclusive.
func WeeklyTotal(l model.Ledger, ref time.Time) int {
	total := 0
	for _, day := range WeekDates(ref) {
		total += DailyTotal(l, model.DateKey(day))
	}
	return total
}

// Summary holds the headline numbers shown on every surface.
type Summary struct {
	Date         string
	Today        int
	TodayEntries int
	Week         int
	ActiveDays   int // days in the window with at least one entry
	DailyAverage int // Week / ActiveDays, 0 when nothing is logged
	Goal         int // 0 when no goal is set
	Remaining    int // Goal - Today, may be negative
}

// Summarize computes the headline numbers for ref's day and week.
func Summarize(l model.Ledger, ref time.Time, goal int) Summary {
	date := model.DateKey(ref)
	s := Summary{
		Date:         date,
		Today:        DailyTotal(l, date),
		TodayEntries: len(l[date].Foods),
		Week:         WeeklyTotal(l, ref),
		Goal:         goal,
	}
	for _, day := range WeekDates(ref) {
		if !l[model.DateKey(day)].Empty() {
			s.ActiveDays++
		}
	}
	if s.ActiveDays > 0 {
		s.DailyAverage = s.Week / s.ActiveDays
	}
	if goal > 0 {
		s.Remaining = goal - s.Today
	}
	return s
}

// GoalProgress returns Today/Goal clamped to [0, 1], or 0 without a goal.
func (s Summary) GoalProgress() float64 {
	if s.Goal <= 0 {
		return 0
	}
	p := float64(s.Today) / float64(s.Goal)
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return p
}
