package session

import (
	"errors"
	"math/rand"

	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/category"
)

// MaxQuestions caps the length of a single practice run.
const MaxQuestions = 50

// ErrEmptyPool is returned when the selected categories match no
// questions. Recoverable: the caller blocks session start and keeps
// the picker open.
var ErrEmptyPool = errors.New("no questions in the selected categories")

// Build filters the bank to the selected categories, shuffles a copy
// of the pool and caps it at MaxQuestions. The source bank is never
// mutated. rng may be nil, in which case the shared math/rand source
// is used; tests inject a seeded one.
func Build(questions []bank.Question, selected map[category.Category]bool, rng *rand.Rand) ([]bank.Question, error) {
	pool := make([]bank.Question, 0, len(questions))
	for _, q := range questions {
		if selected[q.DisplayCategory] {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	shuffle(pool, rng)

	if len(pool) > MaxQuestions {
		pool = pool[:MaxQuestions]
	}
	return pool, nil
}

// BuildSingle is Build for a single fixed category.
func BuildSingle(questions []bank.Question, c category.Category, rng *rand.Rand) ([]bank.Question, error) {
	return Build(questions, map[category.Category]bool{c: true}, rng)
}

// shuffle performs a uniform Fisher-Yates shuffle in place, swapping
// each index i with a random j in [0, i], descending from the end.
func shuffle(pool []bank.Question, rng *rand.Rand) {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for i := len(pool) - 1; i > 0; i-- {
		j := intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}
