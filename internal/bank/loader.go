package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/asandhu/theoryprep/internal/category"
)

// ErrEmptyBank is returned when no valid questions survive loading.
var ErrEmptyBank = errors.New("bank contains no valid questions")

// LoadReport summarises what happened during a load.
type LoadReport struct {
	Loaded     int
	Duplicates int
	Malformed  int
}

// Load annotates, filters and deduplicates raw question records.
//
// Each surviving question gets its DisplayCategory from the category
// mapper (raw category + question text). Records are dropped, not
// errored, when:
//   - they have no options or no option matching the answer key
//     (malformed; keeps the system usable with a partly bad source), or
//   - their id or normalised text was already seen (duplicate).
//
// Insertion order of survivors is preserved. Only a bank with zero
// survivors is an error.
func Load(raw []Question) ([]Question, LoadReport, error) {
	seenIDs := make(map[string]bool, len(raw))
	seenTexts := make(map[string]bool, len(raw))
	out := make([]Question, 0, len(raw))
	var report LoadReport

	for _, q := range raw {
		if len(q.Options) == 0 || q.CorrectOption() == nil {
			report.Malformed++
			continue
		}

		// Ids and normalised texts are separate namespaces: an id that
		// happens to spell another question's text is not a duplicate.
		cleanText := strings.ToLower(strings.TrimSpace(q.Text))
		if seenIDs[q.ID] || seenTexts[cleanText] {
			report.Duplicates++
			continue
		}
		seenIDs[q.ID] = true
		seenTexts[cleanText] = true

		q.DisplayCategory = category.Map(q.Category, q.Text)
		out = append(out, q)
	}

	report.Loaded = len(out)
	if len(out) == 0 {
		return nil, report, ErrEmptyBank
	}
	return out, report, nil
}

// LoadBytes validates raw bank JSON against the bank schema, decodes
// it, and runs Load over its questions. The returned File has its
// Questions slice replaced with the loaded (annotated, deduplicated)
// set.
func LoadBytes(raw []byte) (*File, LoadReport, error) {
	if err := validateFile(raw); err != nil {
		return nil, LoadReport{}, err
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, LoadReport{}, fmt.Errorf("decode bank: %w", err)
	}

	questions, report, err := Load(f.Questions)
	if err != nil {
		return nil, report, err
	}
	f.Questions = questions
	return &f, report, nil
}

// LoadFile reads and loads a bank from disk.
func LoadFile(path string) (*File, LoadReport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("read bank file: %w", err)
	}
	f, report, err := LoadBytes(raw)
	if err != nil {
		return nil, report, fmt.Errorf("load %s: %w", path, err)
	}
	return f, report, nil
}

// CountByCategory returns how many questions fall into each canonical
// category. Every canonical category is present in the result, zero
// or not.
func CountByCategory(questions []Question) map[category.Category]int {
	counts := make(map[category.Category]int, len(category.All()))
	for _, c := range category.All() {
		counts[c] = 0
	}
	for _, q := range questions {
		counts[q.DisplayCategory]++
	}
	return counts
}
