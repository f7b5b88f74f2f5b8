package test

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/asandhu/theoryprep/internal/ui/theme"
)

func (s *TestScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the status line, the question with its
// options, and the feedback banner when an answer has been revealed.
func (s *TestScreen) renderQuestionView(width int) string {
	q := s.engine.Current()
	if q == nil && !s.showingFeedback {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Nothing left to answer")
	}

	var b strings.Builder

	// Status line: question number, score, countdown.
	num := s.engine.Index() + 1
	if s.showingFeedback {
		// The engine already advanced; keep the answered question's
		// number on screen until feedback is dismissed.
		num = s.engine.Index()
		if s.lastOutcome.Done {
			num = s.engine.Len()
		}
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", num, s.engine.Len()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score %d", s.engine.Score()))

	// While feedback is up the engine already holds the next question's
	// countdown, which has nothing to do with the question on screen.
	if !s.showingFeedback {
		timerStyle := theme.TimerOK
		if s.engine.Remaining() <= 10 {
			timerStyle = theme.TimerLow
		}
		infoRight += "  " + timerStyle.Render(fmt.Sprintf("⏱ %ds", s.engine.Remaining()))
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if s.showingFeedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	} else {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Select (1-4) or use arrows + Enter"))
	}

	return b.String()
}

func (s *TestScreen) renderFeedback(width int) string {
	var banner string
	switch {
	case s.timedOut:
		banner = theme.Incorrect.Render("Time's up!")
	case s.lastOutcome.Correct:
		banner = theme.Correct.Render("Correct!")
	default:
		banner = theme.Incorrect.Render("Not quite.")
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, banner))

	if expl := s.choice.Question.Explanation; expl != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(expl))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Press any key to continue"))

	return b.String()
}

func renderQuitConfirm(width, height int) string {
	msg := theme.Body.Render("End this test?") + "\n\n" +
		theme.Hint.Render("Answers you already gave are kept. [Y]es / [N]o")

	box := theme.Card.Render(msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
