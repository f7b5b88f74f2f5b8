package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/asandhu/theoryprep/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput for incremental list filtering.
type FilterInput struct {
	Model  textinput.Model
	active bool
}

// NewFilterInput creates a styled filter input.
func NewFilterInput(placeholder string) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	return FilterInput{Model: ti}
}

// Activate focuses the input and returns its focus command.
func (f *FilterInput) Activate() tea.Cmd {
	f.active = true
	return f.Model.Focus()
}

// Deactivate blurs the input and clears the query.
func (f *FilterInput) Deactivate() {
	f.active = false
	f.Model.Blur()
	f.Model.SetValue("")
}

// Active reports whether the input currently captures keystrokes.
func (f FilterInput) Active() bool {
	return f.active
}

// Update forwards messages to the underlying model while active.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input with a filter prompt.
func (f FilterInput) View() string {
	if !f.active && f.Model.Value() == "" {
		return theme.Hint.Render("/ filter")
	}
	return "/ " + f.Model.View()
}

// Matches reports whether the label contains the current query,
// case-insensitively. An empty query matches everything.
func (f FilterInput) Matches(label string) bool {
	q := strings.ToLower(strings.TrimSpace(f.Model.Value()))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(label), q)
}
