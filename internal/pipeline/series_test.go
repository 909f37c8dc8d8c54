package pipeline

import (
	"reflect"
	"testing"

	"github.com/theirongolddev/kcal/internal/model"
)

func TestDailySeries(t *testing.T) {
	l := ledgerOf(t,
		food(t, "Apple", 95, "2024-01-01T08:00"),
		food(t, "Toast", 150, "2024-01-01T08:05"),
		food(t, "Dinner", 700, "2024-01-01T19:45"),
	)
	s := DailySeries(l, "2024-01-01")

	if !reflect.DeepEqual(s.Labels, []string{"08:00", "08:05", "19:45"}) {
		t.Fatalf("Labels = %v", s.Labels)
	}
	if !reflect.DeepEqual(s.Values, []int{95, 150, 700}) {
		t.Fatalf("Values = %v", s.Values)
	}
	if s.Max() != 700 {
		t.Fatalf("Max = %d, want 700", s.Max())
	}
}

func TestDailySeriesPlaceholder(t *testing.T) {
	s := DailySeries(model.NewLedger(), "2024-01-01")
	if s.Len() != 1 || s.Labels[0] != NoDataLabel || s.Values[0] != 0 {
		t.Fatalf("empty day series = %+v, want single placeholder", s)
	}
}

func TestWeeklySeries(t *testing.T) {
	l := ledgerOf(t,
		food(t, "Mon meal", 500, "2024-01-01T12:00"),
		food(t, "Sun meal", 800, "2024-01-07T12:00"),
	)
	// 2024-01-07 is a Sunday.
	s := WeeklySeries(l, mustTime(t, "2024-01-07T22:00"))

	wantLabels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if !reflect.DeepEqual(s.Labels, wantLabels) {
		t.Fatalf("Labels = %v, want %v", s.Labels, wantLabels)
	}
	wantValues := []int{500, 0, 0, 0, 0, 0, 800}
	if !reflect.DeepEqual(s.Values, wantValues) {
		t.Fatalf("Values = %v, want %v", s.Values, wantValues)
	}
	if f := s.Floats(); len(f) != 7 || f[6] != 800 {
		t.Fatalf("Floats = %v", f)
	}
}

func TestSeriesDoNotMutateLedger(t *testing.T) {
	l := ledgerOf(t, food(t, "Apple", 95, "2024-01-01T08:00"))
	before := l.Clone()
	_ = DailySeries(l, "2024-01-01")
	_ = DailySeries(l, "2024-01-02")
	_ = WeeklySeries(l, mustTime(t, "2024-01-03T08:00"))
	if len(l) != len(before) {
		t.Fatalf("series created days: %v", l.Dates())
	}
}
