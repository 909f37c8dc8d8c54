package pipeline

import (
	"time"

	"github.com/theirongolddev/kcal/internal/model"
)

// NoDataLabel labels the placeholder point of an empty daily series.
const NoDataLabel = "No Food"

// Series is a chart-ready sequence of labelled values.
type Series struct {
	Labels []string
	Values []int
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.Values)
}

// Floats converts the values for the chart renderer.
func (s Series) Floats() []float64 {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		out[i] = float64(v)
	}
	return out
}

// Max returns the largest value, or 0.
func (s Series) Max() int {
	m := 0
	for _, v := range s.Values {
		if v > m {
			m = v
		}
	}
	return m
}

// DailySeries returns one (HH:MM, calories) point per entry on date in
// insertion order. An empty day yields a single placeholder point since
// the chart needs at least one.
func DailySeries(l model.Ledger, date string) Series {
	foods := l[date].Foods
	if len(foods) == 0 {
		return Series{Labels: []string{NoDataLabel}, Values: []int{0}}
	}
	s := Series{
		Labels: make([]string, len(foods)),
		Values: make([]int, len(foods)),
	}
	for i, f := range foods {
		s.Labels[i] = f.Time.Clock()
		s.Values[i] = f.Calories
	}
	return s
}

// WeeklySeries returns exactly 7 points, oldest first and ref last, each
// labelled with its short weekday name.
func WeeklySeries(l model.Ledger, ref time.Time) Series {
	days := WeekDates(ref)
	s := Series{
		Labels: make([]string, len(days)),
		Values: make([]int, len(days)),
	}
	for i, day := range days {
		s.Labels[i] = day.Format("Mon")
		s.Values[i] = DailyTotal(l, model.DateKey(day))
	}
	return s
}
