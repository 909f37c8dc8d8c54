// Package model defines the calorie ledger types shared across kcal.
package model

import (
	"fmt"
	"sort"
)

// FoodEntry is a single logged food item.
type FoodEntry struct {
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Time     Timestamp `json:"time"`
}

// DayLog holds one calendar day's entries and their running total.
// TotalCalories is kept in step with Foods on every append and pop.
type DayLog struct {
	Foods         []FoodEntry `json:"foods"`
	TotalCalories int         `json:"totalCalories"`
}

// Append adds an entry and bumps the total.
func (d *DayLog) Append(e FoodEntry) {
	d.Foods = append(d.Foods, e)
	d.TotalCalories += e.Calories
}

// Pop removes the most recently appended entry.
func (d *DayLog) Pop() (FoodEntry, bool) {
	if len(d.Foods) == 0 {
		return FoodEntry{}, false
	}
	last := d.Foods[len(d.Foods)-1]
	d.Foods = d.Foods[:len(d.Foods)-1]
	d.TotalCalories -= last.Calories
	return last, true
}

// Empty reports whether the day has no entries.
func (d DayLog) Empty() bool {
	return len(d.Foods) == 0
}

// Sum recomputes the total from the entries.
func (d DayLog) Sum() int {
	total := 0
	for _, f := range d.Foods {
		total += f.Calories
	}
	return total
}

// Ledger maps a YYYY-MM-DD date key to that day's log.
type Ledger map[string]DayLog

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return make(Ledger)
}

// Day returns the log for date, or an empty log.
func (l Ledger) Day(date string) DayLog {
	return l[date]
}

// Dates returns the ledger keys in ascending order.
func (l Ledger) Dates() []string {
	dates := make([]string, 0, len(l))
	for d := range l {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// EntryCount returns the number of entries across all days.
func (l Ledger) EntryCount() int {
	n := 0
	for _, d := range l {
		n += len(d.Foods)
	}
	return n
}

// Clone returns a deep copy.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, d := range l {
		foods := make([]FoodEntry, len(d.Foods))
		copy(foods, d.Foods)
		out[k] = DayLog{Foods: foods, TotalCalories: d.TotalCalories}
	}
	return out
}

// Validate checks the stored-ledger invariants: valid date keys, no empty
// days, totals equal to the entry sums, non-negative calories and entries
// filed under their own calendar date.
func (l Ledger) Validate() error {
	for _, date := range l.Dates() {
		d := l[date]
		if _, err := ParseDateKey(date); err != nil {
			return fmt.Errorf("day %q: %w", date, err)
		}
		if d.Empty() {
			return fmt.Errorf("day %s: no entries", date)
		}
		if sum := d.Sum(); sum != d.TotalCalories {
			return fmt.Errorf("day %s: totalCalories %d, entries sum to %d", date, d.TotalCalories, sum)
		}
		for i, f := range d.Foods {
			if f.Calories < 0 {
				return fmt.Errorf("day %s entry %d: negative calories", date, i)
			}
			if f.Time.IsZero() {
				continue
			}
			if got := f.Time.DateKey(); got != date {
				return fmt.Errorf("day %s entry %d: timestamp falls on %s", date, i, got)
			}
		}
	}
	return nil
}

// Repair returns a copy with every total recomputed from its entries and
// empty days dropped, plus the number of days that needed fixing.
func (l Ledger) Repair() (Ledger, int) {
	out := make(Ledger, len(l))
	fixed := 0
	for date, d := range l.Clone() {
		if d.Empty() {
			fixed++
			continue
		}
		if sum := d.Sum(); sum != d.TotalCalories {
			d.TotalCalories = sum
			fixed++
		}
		out[date] = d
	}
	return out, fixed
}
