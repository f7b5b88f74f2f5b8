package test

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/category"
	"github.com/asandhu/theoryprep/internal/progress"
	"github.com/asandhu/theoryprep/internal/router"
	"github.com/asandhu/theoryprep/internal/screen"
	"github.com/asandhu/theoryprep/internal/screens/result"
	"github.com/asandhu/theoryprep/internal/session"
	"github.com/asandhu/theoryprep/internal/store"
	"github.com/asandhu/theoryprep/internal/ui/components"
	"github.com/asandhu/theoryprep/internal/ui/layout"
)

// snapshotKeep is how many progress snapshots survive pruning.
const snapshotKeep = 20

// Deps carries the services a running test needs, plus the category
// selection so a retake can draw a fresh set.
type Deps struct {
	Bank     *bank.File
	Tracker  *progress.Tracker
	Repo     store.ProgressRepo
	Selected map[category.Category]bool
}

// TestScreen drives a timed practice run.
type TestScreen struct {
	deps   Deps
	engine *session.Engine
	choice components.ChoiceList

	showingFeedback    bool
	showingQuitConfirm bool
	lastOutcome        session.Outcome
	timedOut           bool
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

// New creates a TestScreen over an already-built question set.
func New(deps Deps, questions []bank.Question) *TestScreen {
	engine := session.New(questions, deps.Tracker)
	s := &TestScreen{
		deps:   deps,
		engine: engine,
	}
	if q := engine.Current(); q != nil {
		s.choice = components.NewChoiceList(*q)
	}
	return s
}

func (s *TestScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *TestScreen) Title() string {
	return "Practice Test"
}

func (s *TestScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End test"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()
	case persistDoneMsg:
		if msg.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: run %s: could not save progress: %v\n", msg.RunID, msg.Err)
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *TestScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.engine.Phase() != session.PhasePresenting {
		return s, nil
	}

	// The countdown pauses while feedback is on screen.
	if s.showingFeedback || s.showingQuitConfirm {
		return s, tickCmd()
	}

	out := s.engine.Tick()
	if out.Consumed {
		// Countdown hit zero: reveal the answer, no progress recorded.
		s.choice.Reveal()
		s.showingFeedback = true
		s.timedOut = true
		s.lastOutcome = out
	}
	return s, tickCmd()
}

func (s *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.engine.Abort()
			return s, tea.Batch(
				s.persistCmd(),
				func() tea.Msg { return router.PopScreenMsg{} },
			)
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s.advance()
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	var committed bool
	s.choice, committed = s.choice.Update(msg)
	if !committed {
		return s, nil
	}

	out := s.engine.Submit(s.choice.ChosenKey)
	if !out.Consumed {
		return s, nil
	}
	s.showingFeedback = true
	s.timedOut = false
	s.lastOutcome = out

	// Progress is written after every answer so a crash loses at most
	// the question on screen.
	return s, s.persistCmd()
}

// advance dismisses feedback and moves to the next question, or to
// the result screen after the last one.
func (s *TestScreen) advance() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.timedOut = false

	if s.lastOutcome.Done {
		deps := s.deps
		res := result.New(result.Deps{
			Bank:     deps.Bank,
			Tracker:  deps.Tracker,
			Repo:     deps.Repo,
			Selected: deps.Selected,
			Retake: func() tea.Msg {
				questions, err := session.Build(deps.Bank.Questions, deps.Selected, nil)
				if err != nil {
					return router.PopScreenMsg{}
				}
				return router.ReplaceScreenMsg{Screen: New(deps, questions)}
			},
		}, s.lastOutcome.Score, s.lastOutcome.Total)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: res} }
	}

	if q := s.engine.Current(); q != nil {
		s.choice = components.NewChoiceList(*q)
	}
	return s, nil
}

// persistCmd saves a progress snapshot in the background.
func (s *TestScreen) persistCmd() tea.Cmd {
	if s.deps.Repo == nil || s.deps.Tracker == nil {
		return nil
	}
	snap := s.deps.Tracker.Snapshot()
	repo := s.deps.Repo
	runID := s.engine.ID
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.Save(ctx, snap); err != nil {
			return persistDoneMsg{RunID: runID, Err: err}
		}
		return persistDoneMsg{RunID: runID, Err: repo.Prune(ctx, snapshotKeep)}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
