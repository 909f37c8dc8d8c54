package diary

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/kcal/internal/model"
	"github.com/theirongolddev/kcal/internal/store"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := model.ParseTimestamp(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func newTestEditor(t *testing.T, today string) (*Editor, *store.LedgerStore) {
	t.Helper()
	s := store.New(store.NewMemory(), nil)
	now := mustTime(t, today)
	return NewEditor(s, WithClock(func() time.Time { return now })), s
}

// checkInvariants asserts the stored-ledger invariants hold.
func checkInvariants(t *testing.T, l model.Ledger) {
	t.Helper()
	for date, d := range l {
		if d.Empty() {
			t.Fatalf("day %s stored with no entries", date)
		}
		if d.TotalCalories != d.Sum() {
			t.Fatalf("day %s total %d != sum %d", date, d.TotalCalories, d.Sum())
		}
	}
}

type brokenStore struct {
	ledger model.Ledger
	err    error
}

func (b *brokenStore) Load() model.Ledger      { return b.ledger.Clone() }
func (b *brokenStore) Save(model.Ledger) error { return b.err }
func (b *brokenStore) Clear() error            { return b.err }

func TestAddUndoScenario(t *testing.T) {
	e, s := newTestEditor(t, "2024-01-01T12:00")

	total, err := e.AddEntry("Apple", 95, mustTime(t, "2024-01-01T08:00"))
	if err != nil {
		t.Fatalf("AddEntry Apple: %v", err)
	}
	if total != 95 {
		t.Fatalf("total after Apple = %d, want 95", total)
	}

	total, err = e.AddEntry("Toast", 150, mustTime(t, "2024-01-01T08:05"))
	if err != nil {
		t.Fatalf("AddEntry Toast: %v", err)
	}
	if total != 245 {
		t.Fatalf("total after Toast = %d, want 245", total)
	}
	checkInvariants(t, s.Load())

	removed, err := e.UndoLast()
	if err != nil {
		t.Fatalf("UndoLast: %v", err)
	}
	if removed.Name != "Toast" || removed.Calories != 150 {
		t.Fatalf("removed = %+v, want Toast/150", removed)
	}

	l := s.Load()
	checkInvariants(t, l)
	if got := l["2024-01-01"].TotalCalories; got != 95 {
		t.Fatalf("total after undo = %d, want 95", got)
	}
}

func TestAddEntryValidation(t *testing.T) {
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	tests := []struct {
		name     string
		food     string
		calories int
		at       time.Time
		field    string
	}{
		{"empty name", "", 100, at, "name"},
		{"whitespace name", "   \t", 100, at, "name"},
		{"negative calories", "Apple", -1, at, "calories"},
		{"missing time", "Apple", 95, time.Time{}, "time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, s := newTestEditor(t, "2024-01-01T12:00")

			_, err := e.AddEntry(tt.food, tt.calories, tt.at)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("Field = %q, want %q", verr.Field, tt.field)
			}
			l := s.Load()
			if len(l) != 0 {
				t.Fatalf("ledger = %v, want empty after rejected add", l)
			}
			if _, ok := l["2024-01-01"]; ok {
				t.Fatal("rejected add created a day key")
			}
		})
	}
}

func TestAddZeroCalories(t *testing.T) {
	e, s := newTestEditor(t, "2024-01-01T12:00")
	total, err := e.AddEntry("Water", 0, mustTime(t, "2024-01-01T09:00"))
	if err != nil {
		t.Fatalf("AddEntry with 0 calories: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
	if n := len(s.Load()["2024-01-01"].Foods); n != 1 {
		t.Fatalf("entries = %d, want 1", n)
	}
}

func TestAddTrimsName(t *testing.T) {
	e, s := newTestEditor(t, "2024-01-01T12:00")
	if _, err := e.AddEntry("  Apple  ", 95, mustTime(t, "2024-01-01T08:00")); err != nil {
		t.Fatal(err)
	}
	if got := s.Load()["2024-01-01"].Foods[0].Name; got != "Apple" {
		t.Fatalf("name = %q, want Apple", got)
	}
}

func TestUndoOnEmptyLedger(t *testing.T) {
	e, s := newTestEditor(t, "2024-01-01T12:00")

	_, err := e.UndoLast()
	if !errors.Is(err, ErrEmptyLedger) {
		t.Fatalf("err = %v, want ErrEmptyLedger", err)
	}
	var empty *EmptyLedgerError
	if !errors.As(err, &empty) || empty.Date != "2024-01-01" {
		t.Fatalf("err = %#v, want EmptyLedgerError for 2024-01-01", err)
	}
	if l := s.Load(); len(l) != 0 {
		t.Fatalf("ledger changed: %v", l)
	}
}

func TestUndoDeletesEmptiedDay(t *testing.T) {
	e, s := newTestEditor(t, "2024-01-01T12:00")
	if _, err := e.AddEntry("Apple", 95, mustTime(t, "2024-01-01T08:00")); err != nil {
		t.Fatal(err)
	}
	if _, err := e.UndoLast(); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Load()["2024-01-01"]; ok {
		t.Fatal("emptied day still stored")
	}
	if _, err := e.UndoLast(); !errors.Is(err, ErrEmptyLedger) {
		t.Fatalf("second undo err = %v, want ErrEmptyLedger", err)
	}
}

func TestUndoIgnoresBackdatedEntries(t *testing.T) {
	e, s := newTestEditor(t, "2024-01-02T12:00")

	if _, err := e.AddEntry("Lunch", 600, mustTime(t, "2024-01-02T12:00")); err != nil {
		t.Fatal(err)
	}
	// Added last by wall clock, but filed under yesterday.
	if _, err := e.AddEntry("Late snack", 200, mustTime(t, "2024-01-01T23:30")); err != nil {
		t.Fatal(err)
	}

	removed, err := e.UndoLast()
	if err != nil {
		t.Fatal(err)
	}
	if removed.Name != "Lunch" {
		t.Fatalf("removed %q, want Lunch", removed.Name)
	}
	l := s.Load()
	if got := l["2024-01-01"].TotalCalories; got != 200 {
		t.Fatalf("backdated day total = %d, want 200", got)
	}
	if _, ok := l["2024-01-02"]; ok {
		t.Fatal("today should be gone after undoing its only entry")
	}

	if _, err := e.UndoLast(); !errors.Is(err, ErrEmptyLedger) {
		t.Fatalf("undo with only backdated entries err = %v, want ErrEmptyLedger", err)
	}
}

func TestResetAll(t *testing.T) {
	e, s := newTestEditor(t, "2024-01-01T12:00")
	if _, err := e.AddEntry("Apple", 95, mustTime(t, "2024-01-01T08:00")); err != nil {
		t.Fatal(err)
	}

	if err := e.ResetAll(false); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("unconfirmed reset err = %v, want ErrNotConfirmed", err)
	}
	if len(s.Load()) != 1 {
		t.Fatal("unconfirmed reset changed the ledger")
	}

	if err := e.ResetAll(true); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}
	if l := s.Load(); len(l) != 0 {
		t.Fatalf("Load after reset = %v, want empty", l)
	}
}

func TestSaveFailureLeavesNoPartialState(t *testing.T) {
	bs := &brokenStore{ledger: model.NewLedger(), err: errors.New("read-only")}
	e := NewEditor(bs)

	if _, err := e.AddEntry("Apple", 95, mustTime(t, "2024-01-01T08:00")); err == nil {
		t.Fatal("AddEntry succeeded on failing store")
	}
	if len(bs.ledger) != 0 {
		t.Fatal("AddEntry mutated the loaded ledger in place")
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name, food, cal, when string
		field                 string
		missing               bool
	}{
		{name: "ok", food: "Apple", cal: "95", when: "2024-01-01T08:00"},
		{name: "zero", food: "Water", cal: "0", when: "2024-01-01T08:00"},
		{name: "no name", food: " ", cal: "95", when: "2024-01-01T08:00", field: "name", missing: true},
		{name: "no calories", food: "Apple", cal: "", when: "2024-01-01T08:00", field: "calories", missing: true},
		{name: "no time", food: "Apple", cal: "95", when: "", field: "time", missing: true},
		{name: "text calories", food: "Apple", cal: "lots", when: "2024-01-01T08:00", field: "calories"},
		{name: "fractional calories", food: "Apple", cal: "9.5", when: "2024-01-01T08:00", field: "calories"},
		{name: "negative calories", food: "Apple", cal: "-5", when: "2024-01-01T08:00", field: "calories"},
		{name: "bad time", food: "Apple", cal: "95", when: "breakfast", field: "time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseInput(tt.food, tt.cal, tt.when)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("ParseInput: %v", err)
				}
				if in.Name != tt.food {
					t.Fatalf("Name = %q, want %q", in.Name, tt.food)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field || verr.Missing() != tt.missing {
				t.Fatalf("got field %q missing %v, want %q %v", verr.Field, verr.Missing(), tt.field, tt.missing)
			}
		})
	}
}

func TestImportMergeAndReplace(t *testing.T) {
	e, s := newTestEditor(t, "2024-01-02T12:00")
	if _, err := e.AddEntry("Lunch", 600, mustTime(t, "2024-01-02T12:00")); err != nil {
		t.Fatal(err)
	}

	incoming := model.Ledger{
		"2024-01-01": {Foods: []model.FoodEntry{{Name: "Apple", Calories: 95, Time: model.At(mustTime(t, "2024-01-01T08:00"))}}, TotalCalories: 1},
		"2024-01-02": {Foods: []model.FoodEntry{{Name: "Tea", Calories: 5, Time: model.At(mustTime(t, "2024-01-02T15:00"))}}, TotalCalories: 5},
		"2024-01-03": {},
	}

	n, err := e.Import(incoming, false)
	if err != nil {
		t.Fatalf("Import merge: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d, want 2", n)
	}
	l := s.Load()
	checkInvariants(t, l)
	if got := l["2024-01-02"].TotalCalories; got != 605 {
		t.Fatalf("merged day total = %d, want 605", got)
	}
	if got := l["2024-01-02"].Foods[1].Name; got != "Tea" {
		t.Fatalf("merged entry order wrong: %q", got)
	}

	if _, err := e.Import(incoming, true); err != nil {
		t.Fatalf("Import replace: %v", err)
	}
	l = s.Load()
	if got := l["2024-01-02"].TotalCalories; got != 5 {
		t.Fatalf("replaced day total = %d, want 5", got)
	}
	if len(l) != 2 {
		t.Fatalf("days after replace = %d, want 2", len(l))
	}
}

func TestImportRejectsInvalid(t *testing.T) {
	e, s := newTestEditor(t, "2024-01-02T12:00")
	bad := model.Ledger{
		"2024-01-05": {Foods: []model.FoodEntry{{Name: "Apple", Calories: 95, Time: model.At(mustTime(t, "2024-01-01T08:00"))}}, TotalCalories: 95},
	}
	if _, err := e.Import(bad, false); err == nil {
		t.Fatal("Import accepted a misfiled entry")
	}
	noName := model.Ledger{
		"2024-01-01": {Foods: []model.FoodEntry{{Name: " ", Calories: 95, Time: model.At(mustTime(t, "2024-01-01T08:00"))}}, TotalCalories: 95},
	}
	if _, err := e.Import(noName, false); err == nil {
		t.Fatal("Import accepted a nameless entry")
	}
	if len(s.Load()) != 0 {
		t.Fatal("rejected import changed the ledger")
	}
}
