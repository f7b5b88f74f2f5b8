package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asandhu/theoryprep/internal/category"
)

func q(id, text, rawCategory string) Question {
	return Question{
		ID:   id,
		Text: text,
		Options: []Option{
			{Key: "A", Text: "first"},
			{Key: "B", Text: "second"},
		},
		Answer:   "A",
		Category: rawCategory,
	}
}

func TestLoad_AnnotatesDisplayCategory(t *testing.T) {
	questions, report, err := Load([]Question{
		q("1", "What shape is a stop sign?", "Traffic signs"),
		q("2", "What cover must your insurance provide?", "Documents"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, category.Signs, questions[0].DisplayCategory)
	assert.Equal(t, category.Documents, questions[1].DisplayCategory)
}

func TestLoad_DedupByID(t *testing.T) {
	first := q("1", "first text", "Documents")
	second := q("1", "completely different text", "Documents")

	questions, report, err := Load([]Question{first, second})
	require.NoError(t, err)

	require.Len(t, questions, 1)
	assert.Equal(t, "first text", questions[0].Text)
	assert.Equal(t, 1, report.Duplicates)
}

func TestLoad_DedupByNormalizedText(t *testing.T) {
	first := q("1", "The Same Question?", "Documents")
	second := q("2", "  the same question?  ", "Documents")

	questions, report, err := Load([]Question{first, second})
	require.NoError(t, err)

	require.Len(t, questions, 1)
	assert.Equal(t, "1", questions[0].ID)
	assert.Equal(t, 1, report.Duplicates)
}

func TestLoad_IDAndTextNamespacesAreSeparate(t *testing.T) {
	// An id that spells another question's normalised text must not
	// count as a duplicate, in either direction.
	first := q("1", "night driving", "Alertness")
	second := q("night driving", "completely different", "Alertness")
	third := q("overtaking ahead", "3", "Alertness")
	fourth := q("4", "overtaking ahead", "Alertness")

	questions, report, err := Load([]Question{first, second, third, fourth})
	require.NoError(t, err)

	require.Len(t, questions, 4)
	assert.Zero(t, report.Duplicates)
}

func TestLoad_PreservesOrder(t *testing.T) {
	questions, _, err := Load([]Question{
		q("3", "c", "Documents"),
		q("1", "a", "Documents"),
		q("2", "b", "Documents"),
	})
	require.NoError(t, err)

	require.Len(t, questions, 3)
	assert.Equal(t, []string{"3", "1", "2"}, []string{questions[0].ID, questions[1].ID, questions[2].ID})
}

func TestLoad_SkipsMalformed(t *testing.T) {
	noOptions := Question{ID: "1", Text: "no options", Answer: "A", Category: "Documents"}
	badAnswer := q("2", "answer key missing", "Documents")
	badAnswer.Answer = "Z"
	good := q("3", "fine", "Documents")

	questions, report, err := Load([]Question{noOptions, badAnswer, good})
	require.NoError(t, err)

	require.Len(t, questions, 1)
	assert.Equal(t, "3", questions[0].ID)
	assert.Equal(t, 2, report.Malformed)
}

func TestLoad_EmptyBank(t *testing.T) {
	bad := q("1", "broken", "Documents")
	bad.Answer = "Z"

	_, _, err := Load([]Question{bad})
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestLoadBytes_RejectsInvalidShape(t *testing.T) {
	_, _, err := LoadBytes([]byte(`{"questions": [{"id": "1"}]}`))
	assert.Error(t, err)
}

func TestLoadBytes_RejectsInvalidJSON(t *testing.T) {
	_, _, err := LoadBytes([]byte(`{not json`))
	assert.Error(t, err)
}

func TestDefault_LoadsCleanly(t *testing.T) {
	f, report, err := Default()
	require.NoError(t, err)

	assert.Zero(t, report.Duplicates)
	assert.Zero(t, report.Malformed)
	assert.NotEmpty(t, f.Meta.Scoring.ResultLabels)

	// Every canonical category has at least one embedded question.
	counts := CountByCategory(f.Questions)
	for _, c := range category.All() {
		assert.Greaterf(t, counts[c], 0, "no embedded questions for %q", c)
	}
}
