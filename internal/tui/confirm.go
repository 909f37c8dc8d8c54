package tui

import (
	"github.com/charmbracelet/huh"
)

// ResetForm builds the confirmation dialog shown before wiping the ledger.
func ResetForm(confirmed *bool) *huh.Form {
	*confirmed = false
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete all saved food data?").
				Description("Every logged day is removed. This cannot be undone.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(confirmed),
		),
	).WithShowHelp(false)
}
