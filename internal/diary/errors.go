package diary

import (
	"errors"
	"fmt"
)

// ErrEmptyLedger is matched by *EmptyLedgerError.
var ErrEmptyLedger = errors.New("nothing to undo")

// ErrNotConfirmed is returned by ResetAll without confirmation.
var ErrNotConfirmed = errors.New("reset not confirmed")

// ValidationError rejects an entry before any state changes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Missing reports whether the field was left blank rather than malformed.
func (e *ValidationError) Missing() bool {
	return e.Reason == reasonMissing
}

// EmptyLedgerError means the day has no entries to undo.
type EmptyLedgerError struct {
	Date string
}

func (e *EmptyLedgerError) Error() string {
	return fmt.Sprintf("nothing to undo: no food logged on %s", e.Date)
}

// Is lets errors.Is(err, ErrEmptyLedger) match.
func (e *EmptyLedgerError) Is(target error) bool {
	return target == ErrEmptyLedger
}

const reasonMissing = "required"
