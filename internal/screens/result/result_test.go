package result

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asandhu/theoryprep/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestResult_BandLabel(t *testing.T) {
	// nil bank falls back to the default band table.
	if got := New(Deps{}, 43, 50).label; got != "Pass" {
		t.Errorf("43/50 label = %q, want Pass", got)
	}
	if got := New(Deps{}, 20, 50).label; got != "Fail" {
		t.Errorf("20/50 label = %q, want Fail", got)
	}
}

func TestResult_Navigation(t *testing.T) {
	t.Run("home", func(t *testing.T) {
		r := New(Deps{}, 1, 2)
		_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatal("expected a command")
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Error("enter should unwind to home")
		}
	})

	t.Run("back to picker", func(t *testing.T) {
		r := New(Deps{}, 1, 2)
		_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
		if cmd == nil {
			t.Fatal("expected a command")
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Error("esc should pop to the picker")
		}
	})

	t.Run("retake", func(t *testing.T) {
		called := false
		r := New(Deps{Retake: func() tea.Msg {
			called = true
			return router.PopScreenMsg{}
		}}, 1, 2)

		_, cmd := r.Update(keyPress('r'))
		if cmd == nil {
			t.Fatal("expected a command")
		}
		cmd()
		if !called {
			t.Error("r should invoke the injected retake")
		}
	})

	t.Run("retake without injection is inert", func(t *testing.T) {
		r := New(Deps{}, 1, 2)
		if _, cmd := r.Update(keyPress('r')); cmd != nil {
			t.Error("no retake handler means no command")
		}
	})
}
