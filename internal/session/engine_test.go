package session

import (
	"testing"

	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/category"
)

// fakeRecorder captures Record calls for assertions.
type fakeRecorder struct {
	answered int
	correct  int
	byCat    map[category.Category]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{byCat: make(map[category.Category]int)}
}

func (f *fakeRecorder) Record(c category.Category, correct bool) {
	f.answered++
	if correct {
		f.correct++
	}
	f.byCat[c]++
}

func docsQuestions(n int) []bank.Question {
	return makeBank(n, category.Documents)
}

func TestEngine_CountdownStartsAtDefault(t *testing.T) {
	e := New(docsQuestions(1), nil)
	if e.Remaining() != DefaultQuestionSeconds {
		t.Errorf("Remaining = %d, want %d", e.Remaining(), DefaultQuestionSeconds)
	}
}

func TestEngine_PerQuestionTimeOverride(t *testing.T) {
	questions := docsQuestions(1)
	questions[0].TimeSec = 30

	e := New(questions, nil)
	if e.Remaining() != 30 {
		t.Errorf("Remaining = %d, want 30", e.Remaining())
	}
}

func TestEngine_TickDecrementsAndExpires(t *testing.T) {
	questions := docsQuestions(2)
	questions[0].TimeSec = 2
	rec := newFakeRecorder()
	e := New(questions, rec)

	out := e.Tick()
	if out.Consumed {
		t.Error("first tick should not resolve the question")
	}
	if e.Remaining() != 1 {
		t.Errorf("Remaining = %d, want 1", e.Remaining())
	}

	out = e.Tick()
	if !out.Consumed {
		t.Error("countdown reaching zero should expire the question")
	}
	if out.Correct {
		t.Error("a timeout never scores")
	}
	if rec.answered != 0 {
		t.Error("a timeout must not be recorded as answered")
	}
	if e.Index() != 1 {
		t.Errorf("Index = %d, want 1 after expiry", e.Index())
	}
	if e.Remaining() != DefaultQuestionSeconds {
		t.Errorf("Remaining = %d, want fresh countdown", e.Remaining())
	}
}

func TestEngine_ConsumptionGuard(t *testing.T) {
	questions := docsQuestions(1)
	rec := newFakeRecorder()
	e := New(questions, rec)

	first := e.Submit("A") // correct
	second := e.Submit("B")

	if !first.Consumed {
		t.Error("first submit should be consumed")
	}
	if second.Consumed {
		t.Error("second submit for the same question must be a no-op")
	}
	if e.Score() != 1 {
		t.Errorf("Score = %d, want 1", e.Score())
	}
	if rec.answered != 1 {
		t.Errorf("recorder called %d times, want 1", rec.answered)
	}
}

func TestEngine_LateTimerAfterAnswer(t *testing.T) {
	questions := docsQuestions(1)
	questions[0].TimeSec = 1
	rec := newFakeRecorder()
	e := New(questions, rec)

	e.Submit("A")
	out := e.Tick() // late timer firing against an answered question

	if out.Consumed {
		t.Error("tick after the run ended must be a no-op")
	}
	if e.Score() != 1 || rec.answered != 1 {
		t.Error("late tick changed score or progress")
	}
}

func TestEngine_WrongAnswerStillRecorded(t *testing.T) {
	rec := newFakeRecorder()
	e := New(docsQuestions(1), rec)

	out := e.Submit("B")
	if out.Correct {
		t.Error("B should be wrong")
	}
	if rec.answered != 1 || rec.correct != 0 {
		t.Errorf("recorder = %d answered / %d correct, want 1/0", rec.answered, rec.correct)
	}
}

func TestEngine_Abort(t *testing.T) {
	rec := newFakeRecorder()
	e := New(docsQuestions(3), rec)

	e.Submit("A")
	e.Abort()

	if e.Phase() != PhaseAborted {
		t.Errorf("Phase = %v, want PhaseAborted", e.Phase())
	}
	if out := e.Submit("A"); out.Consumed {
		t.Error("submit after abort must be a no-op")
	}
	// The answer recorded before the abort stands.
	if rec.answered != 1 {
		t.Errorf("recorder calls = %d, want 1", rec.answered)
	}
}

// Scenario A: answer everything correctly.
func TestEngine_ScenarioAllCorrect(t *testing.T) {
	rec := newFakeRecorder()
	e := New(docsQuestions(3), rec)

	var final Outcome
	for i := 0; i < 3; i++ {
		final = e.Submit("A")
	}

	if !final.Done {
		t.Fatal("run should be complete")
	}
	if final.Score != 3 || final.Total != 3 {
		t.Errorf("final = %d/%d, want 3/3", final.Score, final.Total)
	}
	if got := Summarize(final.Score, final.Total, []bank.Band{
		{MinPercent: 0, MaxPercent: 49, Label: "Fail"},
		{MinPercent: 50, MaxPercent: 100, Label: "Pass"},
	}); got != "Pass" {
		t.Errorf("Summarize = %q, want Pass", got)
	}
	if rec.byCat[category.Documents] != 3 {
		t.Errorf("recorded answers = %d, want 3", rec.byCat[category.Documents])
	}
}

// Scenario B: one correct answer, two timeouts. Timeouts count
// against the session score but not toward persistent progress.
func TestEngine_ScenarioTimeouts(t *testing.T) {
	rec := newFakeRecorder()
	e := New(docsQuestions(3), rec)

	e.Submit("A")
	e.Expire()
	final := e.Expire()

	if !final.Done {
		t.Fatal("run should be complete")
	}
	if final.Score != 1 || final.Total != 3 {
		t.Errorf("final = %d/%d, want 1/3", final.Score, final.Total)
	}
	if rec.answered != 1 || rec.correct != 1 {
		t.Errorf("progress = %d answered / %d correct, want 1/1", rec.answered, rec.correct)
	}
}

// Scenario C: an empty pool never constructs an engine and never
// touches progress.
func TestEngine_ScenarioEmptyPool(t *testing.T) {
	rec := newFakeRecorder()

	_, err := Build(docsQuestions(3), selectedSet(category.Motorway), nil)
	if err != ErrEmptyPool {
		t.Fatalf("err = %v, want ErrEmptyPool", err)
	}
	if rec.answered != 0 {
		t.Error("progress touched without a session")
	}
}

func TestEngine_AdvancesThroughQuestions(t *testing.T) {
	e := New(docsQuestions(3), nil)

	if e.Index() != 0 || e.Current() == nil {
		t.Fatal("engine should start presenting question 0")
	}
	e.Submit("B")
	if e.Index() != 1 {
		t.Errorf("Index = %d, want 1", e.Index())
	}
	e.Submit("A")
	out := e.Submit("A")
	if !out.Done || e.Phase() != PhaseCompleted {
		t.Error("engine should complete after the last question")
	}
	if e.Current() != nil {
		t.Error("Current should be nil after completion")
	}
}
