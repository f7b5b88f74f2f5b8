package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/ui/theme"
)

// ChoiceList renders a question's keyed options (A-D) and tracks the
// highlighted and submitted choice. Scoring and timing live in the
// session engine; this component only handles presentation and cursor
// movement.
type ChoiceList struct {
	Question  bank.Question
	Selected  int
	Submitted bool
	ChosenKey string
}

// NewChoiceList creates a choice list for the given question.
func NewChoiceList(q bank.Question) ChoiceList {
	return ChoiceList{
		Question: q,
		Selected: 0,
	}
}

// Update handles cursor movement and direct key selection. It returns
// true when the user committed a choice this update.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	if c.Submitted {
		return c, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Question.Options)-1 {
			c.Selected++
		}
	case "enter":
		if len(c.Question.Options) > 0 {
			c.Submitted = true
			c.ChosenKey = c.Question.Options[c.Selected].Key
			return c, true
		}
	default:
		// Direct selection by option key or number: "a"/"1" pick the
		// first option, and so on.
		if i := c.optionIndex(kmsg.String()); i >= 0 {
			c.Selected = i
			c.Submitted = true
			c.ChosenKey = c.Question.Options[i].Key
			return c, true
		}
	}

	return c, false
}

func (c ChoiceList) optionIndex(key string) int {
	if len(key) != 1 {
		return -1
	}
	ch := key[0]
	var i int
	switch {
	case ch >= 'a' && ch <= 'z':
		i = int(ch - 'a')
	case ch >= '1' && ch <= '9':
		i = int(ch - '1')
	default:
		return -1
	}
	if i >= len(c.Question.Options) {
		return -1
	}
	return i
}

// View renders the question text and its options. When submitted, the
// correct option is highlighted green and a wrong pick red.
func (c ChoiceList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(c.Question.Text) + "\n\n"

	for i, opt := range c.Question.Options {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, opt.Key, opt.Text)

		if c.Submitted {
			switch {
			case opt.Key == c.Question.Answer:
				s += theme.Correct.Render(line) + "\n"
			case opt.Key == c.ChosenKey:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}

// Reveal marks the list as submitted without a chosen key, used when
// the countdown expires before the user answers.
func (c *ChoiceList) Reveal() {
	c.Submitted = true
	c.ChosenKey = ""
}

// IsCorrect reports whether the committed choice matches the answer.
func (c ChoiceList) IsCorrect() bool {
	return c.Submitted && c.ChosenKey == c.Question.Answer
}
