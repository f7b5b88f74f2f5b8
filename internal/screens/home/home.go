package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/progress"
	"github.com/asandhu/theoryprep/internal/router"
	"github.com/asandhu/theoryprep/internal/screen"
	"github.com/asandhu/theoryprep/internal/screens/categories"
	"github.com/asandhu/theoryprep/internal/screens/stats"
	"github.com/asandhu/theoryprep/internal/store"
	"github.com/asandhu/theoryprep/internal/ui/components"
	"github.com/asandhu/theoryprep/internal/ui/theme"
)

// Deps carries the shared services the home screen hands on to its
// child screens.
type Deps struct {
	Bank    *bank.File
	Tracker *progress.Tracker
	Repo    store.ProgressRepo
}

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: categories.New(categories.Deps{
					Bank:    deps.Bank,
					Tracker: deps.Tracker,
					Repo:    deps.Repo,
				})}
			}
		}},
		{Label: "MY PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.Tracker)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	title := theme.Title.Width(width).Render("TheoryPrep")
	subtitle := theme.Subtitle.Width(width).Render("Driving theory practice in your terminal")

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(subtitle)
	b.WriteString("\n\n")

	if h.deps.Tracker != nil {
		answered := 0
		correct := 0
		for _, e := range h.deps.Tracker.Snapshot() {
			answered += e.Answered
			correct += e.Correct
		}
		total := h.deps.Tracker.TotalQuestions()
		statsLine := fmt.Sprintf("Bank: %d questions    Answered: %d    Correct: %d",
			total, answered, correct)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(statsLine))
		b.WriteString("\n\n")
	}

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	b.WriteString(menu)

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}
