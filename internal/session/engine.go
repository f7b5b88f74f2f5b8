package session

import (
	"github.com/google/uuid"

	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/category"
)

// DefaultQuestionSeconds is the countdown for questions that carry no
// per-question time limit.
const DefaultQuestionSeconds = 45

// Phase is the lifecycle state of an Engine.
type Phase int

const (
	PhasePresenting Phase = iota // A question is live and unanswered
	PhaseCompleted               // All questions resolved
	PhaseAborted                 // Exited mid-run
)

// Recorder receives one call per explicitly answered question.
// Timeouts are not recorded.
type Recorder interface {
	Record(c category.Category, correct bool)
}

// Outcome describes what a resolution attempt did.
type Outcome struct {
	// Consumed is false when the attempt was a no-op: the question had
	// already been resolved (e.g. a late timer racing a click) or the
	// run was over.
	Consumed bool
	Correct  bool
	Done     bool
	Score    int
	Total    int
}

// Engine drives one practice run, one question at a time. It owns no
// timer: the caller feeds elapsed seconds via Tick, which makes the
// countdown deterministic under test. All methods are meant for a
// single goroutine; the concurrency hazard (timer expiry racing a
// manual answer) is resolved by the answered guard, first caller
// wins.
type Engine struct {
	ID        string
	questions []bank.Question
	recorder  Recorder

	current   int
	score     int
	remaining int
	answered  bool
	phase     Phase
}

// New creates an Engine over a built (filtered, shuffled, capped)
// question sequence. recorder may be nil.
func New(questions []bank.Question, recorder Recorder) *Engine {
	e := &Engine{
		ID:        uuid.New().String(),
		questions: questions,
		recorder:  recorder,
	}
	e.remaining = questionSeconds(e.Current())
	return e
}

// Current returns the live question, or nil when the run is over.
func (e *Engine) Current() *bank.Question {
	if e.phase != PhasePresenting || e.current >= len(e.questions) {
		return nil
	}
	return &e.questions[e.current]
}

// Index returns the 0-based position of the live question.
func (e *Engine) Index() int { return e.current }

// Len returns the number of questions in the run.
func (e *Engine) Len() int { return len(e.questions) }

// Score returns the correct-answer count so far.
func (e *Engine) Score() int { return e.score }

// Remaining returns the seconds left on the live question.
func (e *Engine) Remaining() int { return e.remaining }

// Phase returns the engine lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Submit resolves the live question with an explicit answer key.
func (e *Engine) Submit(key string) Outcome {
	return e.resolve(&key)
}

// Expire resolves the live question as timed out (no answer). The
// question scores as wrong and is not counted as answered.
func (e *Engine) Expire() Outcome {
	return e.resolve(nil)
}

// Tick consumes one elapsed second. When the countdown reaches zero
// the live question expires. Safe to call after the run has ended.
func (e *Engine) Tick() Outcome {
	if e.phase != PhasePresenting || e.answered {
		return Outcome{Score: e.score, Total: e.Len()}
	}
	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining == 0 {
		return e.Expire()
	}
	return Outcome{Score: e.score, Total: e.Len()}
}

// Abort discards the rest of the run. Progress recorded for already
// answered questions stands; nothing else is persisted.
func (e *Engine) Abort() {
	if e.phase == PhasePresenting {
		e.phase = PhaseAborted
	}
}

// resolve scores the live question at most once and advances. The
// answered flag is the single-consumption guard: whichever of the
// timer and the user gets here first wins, the other becomes a no-op.
func (e *Engine) resolve(key *string) Outcome {
	if e.phase != PhasePresenting || e.answered || e.current >= len(e.questions) {
		return Outcome{Score: e.score, Total: e.Len()}
	}
	e.answered = true

	q := e.questions[e.current]
	correct := key != nil && *key == q.Answer
	if correct {
		e.score++
	}
	if key != nil && e.recorder != nil {
		e.recorder.Record(q.DisplayCategory, correct)
	}

	out := Outcome{
		Consumed: true,
		Correct:  correct,
		Score:    e.score,
		Total:    e.Len(),
	}

	if e.current >= len(e.questions)-1 {
		e.phase = PhaseCompleted
		out.Done = true
		return out
	}

	e.current++
	e.answered = false
	e.remaining = questionSeconds(&e.questions[e.current])
	return out
}

func questionSeconds(q *bank.Question) int {
	if q != nil && q.TimeSec > 0 {
		return q.TimeSec
	}
	return DefaultQuestionSeconds
}
