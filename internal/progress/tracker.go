// Package progress tracks cumulative per-category answer counters
// across practice sessions. Totals are always recomputed from the
// live bank; answered/correct only ever grow.
package progress

import (
	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/category"
)

// Entry holds the counters for one category.
// Invariant: 0 <= Correct <= Answered.
type Entry struct {
	Total    int `json:"total"`
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

// Tracker is the in-memory progress state. Entries are keyed by
// category label rather than the closed enum so that labels persisted
// by a newer build survive a round-trip through an older one.
type Tracker struct {
	entries map[string]*Entry
}

// Reconcile merges persisted counters with the live bank.
//
// Every canonical category ends up present; its Total is recomputed
// from the bank and its Answered/Correct are taken from persisted
// when available. Persisted labels outside the canonical set are
// retained untouched. persisted may be nil (fresh start).
func Reconcile(questions []bank.Question, persisted map[string]Entry) *Tracker {
	entries := make(map[string]*Entry, len(category.All())+len(persisted))

	for label, e := range persisted {
		copied := e
		entries[label] = &copied
	}

	counts := bank.CountByCategory(questions)
	for _, c := range category.All() {
		e, ok := entries[c.Label()]
		if !ok {
			e = &Entry{}
			entries[c.Label()] = e
		}
		e.Total = counts[c]
	}

	return &Tracker{entries: entries}
}

// Record counts one explicitly answered question. Timeouts never
// reach here: an unanswered question does not advance any counter.
func (t *Tracker) Record(c category.Category, correct bool) {
	e, ok := t.entries[c.Label()]
	if !ok {
		e = &Entry{}
		t.entries[c.Label()] = e
	}
	e.Answered++
	if correct {
		e.Correct++
	}
}

// Get returns the counters for a canonical category.
func (t *Tracker) Get(c category.Category) Entry {
	if e, ok := t.entries[c.Label()]; ok {
		return *e
	}
	return Entry{}
}

// Snapshot returns a copy of all entries, including retained
// non-canonical labels, suitable for persistence or display.
func (t *Tracker) Snapshot() map[string]Entry {
	out := make(map[string]Entry, len(t.entries))
	for label, e := range t.entries {
		out[label] = *e
	}
	return out
}

// TotalQuestions returns the bank-wide question count across the
// canonical categories.
func (t *Tracker) TotalQuestions() int {
	total := 0
	for _, c := range category.All() {
		total += t.Get(c).Total
	}
	return total
}

// PercentCorrect returns Correct/Total for a category as 0..100, or 0
// when the category has no questions.
func (t *Tracker) PercentCorrect(c category.Category) float64 {
	e := t.Get(c)
	if e.Total == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Total) * 100
}
