package categories

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/category"
	"github.com/asandhu/theoryprep/internal/progress"
	"github.com/asandhu/theoryprep/internal/router"
	"github.com/asandhu/theoryprep/internal/screen"
	"github.com/asandhu/theoryprep/internal/screens/test"
	"github.com/asandhu/theoryprep/internal/session"
	"github.com/asandhu/theoryprep/internal/store"
	"github.com/asandhu/theoryprep/internal/ui/components"
	"github.com/asandhu/theoryprep/internal/ui/layout"
	"github.com/asandhu/theoryprep/internal/ui/theme"
)

// Deps carries the services the picker needs to start a test.
type Deps struct {
	Bank    *bank.File
	Tracker *progress.Tracker
	Repo    store.ProgressRepo
}

// CategoriesScreen lets the user pick the categories for a practice
// run. Every category starts selected; an empty pool is reported
// inline instead of starting a test.
type CategoriesScreen struct {
	deps     Deps
	counts   map[category.Category]int
	selected map[category.Category]bool
	cursor   int
	filter   components.FilterInput
	errMsg   string
}

var _ screen.Screen = (*CategoriesScreen)(nil)
var _ screen.KeyHintProvider = (*CategoriesScreen)(nil)

// New creates the category picker with all categories pre-selected.
func New(deps Deps) *CategoriesScreen {
	selected := make(map[category.Category]bool, len(category.All()))
	for _, c := range category.All() {
		selected[c] = true
	}

	var counts map[category.Category]int
	if deps.Bank != nil {
		counts = bank.CountByCategory(deps.Bank.Questions)
	}

	return &CategoriesScreen{
		deps:     deps,
		counts:   counts,
		selected: selected,
		filter:   components.NewFilterInput("category name"),
	}
}

func (c *CategoriesScreen) Init() tea.Cmd {
	return nil
}

func (c *CategoriesScreen) Title() string {
	return "Pick Categories"
}

func (c *CategoriesScreen) KeyHints() []layout.KeyHint {
	if c.filter.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear filter"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "A", Description: "All/none"},
		{Key: "/", Description: "Filter"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// visible returns the categories matching the current filter, in
// canonical order.
func (c *CategoriesScreen) visible() []category.Category {
	var out []category.Category
	for _, cat := range category.All() {
		if c.filter.Matches(cat.Label()) {
			out = append(out, cat)
		}
	}
	return out
}

func (c *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if c.filter.Active() {
		if isKey {
			switch kmsg.String() {
			case "enter":
				c.filter.Deactivate()
				c.cursor = 0
				return c, nil
			case "esc":
				c.filter.Deactivate()
				c.cursor = 0
				return c, nil
			}
		}
		var cmd tea.Cmd
		c.filter, cmd = c.filter.Update(msg)
		if c.cursor >= len(c.visible()) {
			c.cursor = 0
		}
		return c, cmd
	}

	if !isKey {
		return c, nil
	}

	visible := c.visible()

	switch kmsg.String() {
	case "esc":
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(visible)-1 {
			c.cursor++
		}
	case " ", "space":
		if c.cursor < len(visible) {
			cat := visible[c.cursor]
			c.selected[cat] = !c.selected[cat]
			c.errMsg = ""
		}
	case "a":
		// Toggle between everything and nothing.
		all := true
		for _, cat := range category.All() {
			if !c.selected[cat] {
				all = false
				break
			}
		}
		for _, cat := range category.All() {
			c.selected[cat] = !all
		}
		c.errMsg = ""
	case "/":
		return c, c.filter.Activate()
	case "enter":
		return c.startTest()
	}

	return c, nil
}

func (c *CategoriesScreen) startTest() (screen.Screen, tea.Cmd) {
	questions, err := session.Build(c.deps.Bank.Questions, c.selected, nil)
	if err != nil {
		if errors.Is(err, session.ErrEmptyPool) {
			c.errMsg = "No questions in the selected categories. Pick at least one with questions."
			return c, nil
		}
		c.errMsg = err.Error()
		return c, nil
	}

	chosen := make(map[category.Category]bool, len(c.selected))
	for cat, on := range c.selected {
		chosen[cat] = on
	}

	return c, func() tea.Msg {
		return router.PushScreenMsg{Screen: test.New(test.Deps{
			Bank:     c.deps.Bank,
			Tracker:  c.deps.Tracker,
			Repo:     c.deps.Repo,
			Selected: chosen,
		}, questions)}
	}
}

func (c *CategoriesScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Choose what to practise"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, c.filter.View()))
	b.WriteString("\n\n")

	visible := c.visible()
	if len(visible) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No categories match the filter")))
		return b.String()
	}

	barWidth := 24
	var rows []string
	for i, cat := range visible {
		mark := "[ ]"
		if c.selected[cat] {
			mark = "[x]"
		}

		cursor := "  "
		if i == c.cursor {
			cursor = "▸ "
		}

		entry := c.deps.Tracker.Get(cat)
		pct := 0.0
		if entry.Total > 0 {
			pct = float64(entry.Correct) / float64(entry.Total)
		}
		bar := components.NewProgressBar("", pct, false, barWidth)

		label := fmt.Sprintf("%s%s %-26s %2d q  ", cursor, mark, cat.Label(), c.counts[cat])

		var style lipgloss.Style
		if i == c.cursor {
			style = theme.Selected
		} else if c.selected[cat] {
			style = theme.Unselected
		} else {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}

		rows = append(rows, style.Render(label)+bar.View()+
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %d/%d", entry.Correct, entry.Total)))
	}

	list := strings.Join(rows, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list))

	if c.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(c.errMsg)))
	}

	return b.String()
}
