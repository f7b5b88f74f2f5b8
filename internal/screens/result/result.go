package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/category"
	"github.com/asandhu/theoryprep/internal/progress"
	"github.com/asandhu/theoryprep/internal/router"
	"github.com/asandhu/theoryprep/internal/screen"
	"github.com/asandhu/theoryprep/internal/session"
	"github.com/asandhu/theoryprep/internal/store"
	"github.com/asandhu/theoryprep/internal/ui/components"
	"github.com/asandhu/theoryprep/internal/ui/layout"
	"github.com/asandhu/theoryprep/internal/ui/theme"
)

// Deps mirrors the test screen's dependencies so a retake can build a
// fresh run from the same category selection. Retake is injected by
// the test screen to avoid a package cycle.
type Deps struct {
	Bank     *bank.File
	Tracker  *progress.Tracker
	Repo     store.ProgressRepo
	Selected map[category.Category]bool
	Retake   func() tea.Msg
}

// ResultScreen shows the score and band label for a finished run.
type ResultScreen struct {
	deps  Deps
	score int
	total int
	label string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a completed run.
func New(deps Deps, score, total int) *ResultScreen {
	return &ResultScreen{
		deps:  deps,
		score: score,
		total: total,
		label: session.Summarize(score, total, session.Bands(deps.Bank)),
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Result"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retake"},
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Categories"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r", "R":
		if r.deps.Retake != nil {
			return r, func() tea.Msg { return r.deps.Retake() }
		}
	case "enter", "h":
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	case "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	var b strings.Builder

	labelStyle := theme.Correct
	if r.label == "Fail" {
		labelStyle = theme.Incorrect
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Test complete"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		labelStyle.Render(r.label)))
	b.WriteString("\n\n")

	pct := session.Percent(r.score, r.total)
	statsLine := fmt.Sprintf("Score: %d/%d        %.0f%%", r.score, r.total, pct)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	frac := 0.0
	if r.total > 0 {
		frac = float64(r.score) / float64(r.total)
	}
	bar := components.NewProgressBar("", frac, false, min(width-8, 40))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
