// Package diary implements the calorie ledger's write path: adding
// entries, undoing today's last entry and wiping everything.
package diary

import (
	"fmt"
	"time"

	"github.com/theirongolddev/kcal/internal/log"
	"github.com/theirongolddev/kcal/internal/model"
)

// LedgerStore is the persistence the editor reads from and writes to.
type LedgerStore interface {
	Load() model.Ledger
	Save(model.Ledger) error
	Clear() error
}

// Editor applies user actions to the persisted ledger. Every operation
// loads the full ledger, mutates it, and saves it back before returning.
type Editor struct {
	store LedgerStore
	now   func() time.Time
	log   *log.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock sets the source of "now" used to decide which day is today.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// WithLogger sets the editor's logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// NewEditor returns an Editor over store.
func NewEditor(store LedgerStore, opts ...Option) *Editor {
	e := &Editor{store: store, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.OrNop().WithComponent(log.ComponentDiary)
	return e
}

// Now returns the editor's current time.
func (e *Editor) Now() time.Time {
	return e.now()
}

// Today returns today's ledger key.
func (e *Editor) Today() string {
	return model.DateKey(e.now())
}

// Snapshot loads the ledger for read-only use.
func (e *Editor) Snapshot() model.Ledger {
	return e.store.Load()
}

// AddEntry appends a food entry to the day at falls on and returns that
// day's new total.
func (e *Editor) AddEntry(name string, calories int, at time.Time) (int, error) {
	name, err := validate(name, calories, at)
	if err != nil {
		return 0, err
	}

	entry := model.FoodEntry{Name: name, Calories: calories, Time: model.At(at)}
	date := entry.Time.DateKey()

	ledger := e.store.Load()
	day := ledger[date]
	day.Append(entry)
	ledger[date] = day

	if err := e.store.Save(ledger); err != nil {
		return 0, err
	}

	e.log.Debug("added entry",
		log.FieldDate, date,
		log.FieldFood, name,
		log.FieldCalories, calories,
		log.FieldTotal, day.TotalCalories,
	)
	return day.TotalCalories, nil
}

// Add is AddEntry for a parsed form Input.
func (e *Editor) Add(in Input) (int, error) {
	return e.AddEntry(in.Name, in.Calories, in.At)
}

// UndoLast removes the most recently added entry from today's log. Entries
// backdated to other days are never touched.
func (e *Editor) UndoLast() (model.FoodEntry, error) {
	today := e.Today()

	ledger := e.store.Load()
	day, ok := ledger[today]
	if !ok {
		return model.FoodEntry{}, &EmptyLedgerError{Date: today}
	}
	removed, ok := day.Pop()
	if !ok {
		return model.FoodEntry{}, &EmptyLedgerError{Date: today}
	}

	if day.Empty() {
		delete(ledger, today)
	} else {
		ledger[today] = day
	}

	if err := e.store.Save(ledger); err != nil {
		return model.FoodEntry{}, err
	}

	e.log.Debug("removed entry",
		log.FieldDate, today,
		log.FieldFood, removed.Name,
		log.FieldCalories, removed.Calories,
	)
	return removed, nil
}

// ResetAll wipes the whole ledger. It is irreversible, so the caller must
// pass confirmed=true after asking the user.
func (e *Editor) ResetAll(confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := e.store.Clear(); err != nil {
		return err
	}
	e.log.Info("ledger reset")
	return nil
}

// Import folds an exported ledger into the stored one. Totals are
// recomputed from entries and empty days dropped before validation. With
// replace the stored ledger is discarded first; otherwise each day's
// entries are appended after the existing ones. Returns the number of
// entries imported.
func (e *Editor) Import(in model.Ledger, replace bool) (int, error) {
	incoming, _ := in.Repair()
	if err := incoming.Validate(); err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	for _, date := range incoming.Dates() {
		for _, f := range incoming[date].Foods {
			if _, err := validate(f.Name, f.Calories, f.Time.Time); err != nil {
				return 0, fmt.Errorf("import %s: %w", date, err)
			}
		}
	}

	ledger := model.NewLedger()
	if !replace {
		ledger = e.store.Load()
	}

	n := 0
	for _, date := range incoming.Dates() {
		day := ledger[date]
		for _, f := range incoming[date].Foods {
			day.Append(f)
			n++
		}
		ledger[date] = day
	}

	if err := e.store.Save(ledger); err != nil {
		return 0, err
	}
	e.log.Info("imported ledger", "entries", n, "days", len(incoming), "replace", replace)
	return n, nil
}
