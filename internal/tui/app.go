// Package tui provides the interactive Bubble Tea widget for kcal.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/kcal/internal/diary"
	"github.com/theirongolddev/kcal/internal/model"
	"github.com/theirongolddev/kcal/internal/tui/components"
	"github.com/theirongolddev/kcal/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Status texts shown after each action.
const (
	StatusAdded     = "Food added successfully!"
	StatusMissing   = "Please fill all fields!"
	StatusCleared   = "Inputs cleared."
	StatusNoUndo    = "No food to remove today."
	StatusReset     = "All data reset!"
	statusRemovedFn = "Removed: %s"
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
)

var keyHints = []components.KeyHint{
	{Key: "enter", Desc: "add"},
	{Key: "tab", Desc: "next"},
	{Key: "^z", Desc: "undo"},
	{Key: "^l", Desc: "clear"},
	{Key: "^r", Desc: "reset"},
	{Key: "esc", Desc: "quit"},
}

// App is the root Bubble Tea model. Every ledger mutation runs
// synchronously inside Update through the editor.
type App struct {
	editor *diary.Editor
	goal   int

	ledger model.Ledger // refreshed after each mutation
	form   entryForm

	resetForm    *huh.Form
	resetConfirm *bool

	status   string
	statusOK bool

	width  int
	height int
}

// NewApp creates the widget around an editor. goal <= 0 hides the goal bar.
func NewApp(editor *diary.Editor, goal int) App {
	return App{
		editor:       editor,
		goal:         goal,
		ledger:       editor.Snapshot(),
		form:         newEntryForm(editor.Now()),
		resetConfirm: new(bool),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.resetForm != nil {
			a.resetForm = a.resetForm.WithWidth(a.dialogWidth())
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// The reset dialog intercepts all keys while open
		if a.resetForm != nil {
			if msg.String() == "esc" {
				a.resetForm = nil
				return a, nil
			}
			return a.updateResetForm(msg)
		}

		switch msg.String() {
		case "esc":
			return a, tea.Quit
		case "enter":
			a.submit()
			return a, nil
		case "ctrl+z":
			a.undo()
			return a, nil
		case "ctrl+l":
			a.clearForm()
			return a, nil
		case "ctrl+r":
			a.resetForm = ResetForm(a.resetConfirm).WithWidth(a.dialogWidth())
			return a, a.resetForm.Init()
		case "tab", "down":
			return a, a.form.next()
		case "shift+tab", "up":
			return a, a.form.prev()
		}
	}

	if a.resetForm != nil {
		return a.updateResetForm(msg)
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.update(msg)
	return a, cmd
}

func (a App) updateResetForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.resetForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.resetForm = f
	}

	switch a.resetForm.State {
	case huh.StateCompleted:
		a.resetForm = nil
		a.applyReset(*a.resetConfirm)
		return a, nil
	case huh.StateAborted:
		a.resetForm = nil
		return a, nil
	}
	return a, cmd
}

// submit validates the form and adds the entry.
func (a *App) submit() {
	in, err := diary.ParseInput(a.form.values())
	if err != nil {
		a.setStatus(inputErrorText(err), false)
		return
	}
	if _, err := a.editor.Add(in); err != nil {
		a.setStatus(err.Error(), false)
		return
	}
	a.refresh()
	a.form.reset(a.editor.Now())
	a.setStatus(StatusAdded, true)
}

func (a *App) undo() {
	removed, err := a.editor.UndoLast()
	switch {
	case errors.Is(err, diary.ErrEmptyLedger):
		a.setStatus(StatusNoUndo, false)
		return
	case err != nil:
		a.setStatus(err.Error(), false)
		return
	}
	a.refresh()
	a.setStatus(fmt.Sprintf(statusRemovedFn, removed.Name), true)
}

func (a *App) clearForm() {
	a.form.reset(a.editor.Now())
	a.setStatus(StatusCleared, true)
}

// applyReset wipes the ledger when the dialog was confirmed; a cancel leaves
// everything as it was.
func (a *App) applyReset(confirmed bool) {
	if !confirmed {
		return
	}
	if err := a.editor.ResetAll(true); err != nil {
		a.setStatus(err.Error(), false)
		return
	}
	a.refresh()
	a.setStatus(StatusReset, true)
}

func (a *App) refresh() {
	a.ledger = a.editor.Snapshot()
}

func (a *App) setStatus(msg string, ok bool) {
	a.status = msg
	a.statusOK = ok
}

// inputErrorText maps a form validation failure to the user-facing message.
func inputErrorText(err error) string {
	var ve *diary.ValidationError
	if errors.As(err, &ve) {
		if ve.Missing() {
			return StatusMissing
		}
		return fmt.Sprintf("Invalid %s: %s", ve.Field, ve.Reason)
	}
	return err.Error()
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) dialogWidth() int {
	return min(max(a.contentWidth()-8, 30), 60)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  kcal needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.resetForm != nil {
		return a.viewReset()
	}
	return a.viewMain()
}

func (a App) viewReset() string {
	card := components.FocusCard("Reset", a.resetForm.View(), a.dialogWidth()+4)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	cw := a.contentWidth()

	var b strings.Builder
	b.WriteString(a.renderHeader(cw))
	b.WriteString("\n")
	b.WriteString(a.renderDashboard(cw))

	statusBar := components.RenderStatusBar(cw, keyHints, a.status, a.statusOK)
	content := b.String()
	if a.height > 0 {
		h := a.height - lipgloss.Height(statusBar)
		content = padHeight(truncateHeight(content, h), h)
	}
	return content + "\n" + statusBar
}

func (a App) renderHeader(cw int) string {
	t := theme.Active
	logo := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◈ kcal")
	date := lipgloss.NewStyle().Foreground(t.TextMuted).Render(a.editor.Now().Format("Mon Jan 2"))
	gap := max(cw-lipgloss.Width(logo)-lipgloss.Width(date)-2, 1)
	return " " + logo + strings.Repeat(" ", gap) + date + " "
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
