package tui

import (
	"strings"
	"time"

	"github.com/theirongolddev/kcal/internal/model"
	"github.com/theirongolddev/kcal/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldName = iota
	fieldCalories
	fieldTime
	fieldCount // sentinel
)

var fieldLabels = [fieldCount]string{"Food", "Calories", "Time"}

// entryForm holds the three add-entry inputs and which one has focus.
type entryForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newEntryForm(now time.Time) entryForm {
	var f entryForm

	name := textinput.New()
	name.Placeholder = "Apple"
	name.CharLimit = 64
	name.Width = 32
	f.inputs[fieldName] = name

	cal := textinput.New()
	cal.Placeholder = "95"
	cal.CharLimit = 6
	cal.Width = 8
	f.inputs[fieldCalories] = cal

	at := textinput.New()
	at.Placeholder = model.TimestampLayout
	at.CharLimit = len(model.TimestampLayout) + 3
	at.Width = len(model.TimestampLayout) + 1
	f.inputs[fieldTime] = at

	f.reset(now)
	return f
}

// reset empties name and calories, sets the time to now and focuses the name.
func (f *entryForm) reset(now time.Time) {
	f.inputs[fieldName].SetValue("")
	f.inputs[fieldCalories].SetValue("")
	f.inputs[fieldTime].SetValue(model.At(now).String())
	f.setFocus(fieldName)
}

func (f *entryForm) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *entryForm) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *entryForm) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// values returns the raw name, calories and time text.
func (f entryForm) values() (string, string, string) {
	return f.inputs[fieldName].Value(), f.inputs[fieldCalories].Value(), f.inputs[fieldTime].Value()
}

func (f entryForm) update(msg tea.Msg) (entryForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f entryForm) view() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Width(10)
	active := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Width(10)

	rows := make([]string, fieldCount)
	for i, in := range f.inputs {
		ls := label
		if i == f.focus {
			ls = active
		}
		rows[i] = ls.Render(fieldLabels[i]) + in.View()
	}
	return strings.Join(rows, "\n")
}
