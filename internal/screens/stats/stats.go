package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asandhu/theoryprep/internal/category"
	"github.com/asandhu/theoryprep/internal/progress"
	"github.com/asandhu/theoryprep/internal/router"
	"github.com/asandhu/theoryprep/internal/screen"
	"github.com/asandhu/theoryprep/internal/ui/components"
	"github.com/asandhu/theoryprep/internal/ui/layout"
	"github.com/asandhu/theoryprep/internal/ui/theme"
)

// StatsScreen is a read-only view of per-category progress.
type StatsScreen struct {
	tracker *progress.Tracker
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen over the live tracker.
func New(tracker *progress.Tracker) *StatsScreen {
	return &StatsScreen{tracker: tracker}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "My Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Progress by category"))
	b.WriteString("\n\n")

	if s.tracker == nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No progress yet")))
		return b.String()
	}

	barWidth := 24
	var rows []string
	var answered, correct int
	for _, cat := range category.All() {
		e := s.tracker.Get(cat)
		answered += e.Answered
		correct += e.Correct

		pct := 0.0
		if e.Total > 0 {
			pct = float64(e.Correct) / float64(e.Total)
		}
		bar := components.NewProgressBar("", pct, false, barWidth)

		label := lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("%-26s", cat.Label()))
		counts := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %2d/%2d correct, %2d answered", e.Correct, e.Total, e.Answered))

		rows = append(rows, label+bar.View()+counts)
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	total := s.tracker.TotalQuestions()
	overall := 0.0
	if answered > 0 {
		overall = float64(correct) / float64(answered) * 100
	}
	summary := fmt.Sprintf("Overall: %d/%d answered, %d correct (%.0f%%)",
		answered, total, correct, overall)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(summary))

	return b.String()
}
