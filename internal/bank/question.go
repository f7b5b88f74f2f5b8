package bank

import "github.com/asandhu/theoryprep/internal/category"

// Option is a single answer choice. Key is a one-letter label; keys
// are unique within a question and slice order is display order.
type Option struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Question is one bank entry, immutable once loaded. DisplayCategory
// is derived at load time and is the only category the rest of the
// system looks at; Category is the raw source label.
type Question struct {
	ID              string            `json:"id"`
	Text            string            `json:"text"`
	Options         []Option          `json:"options"`
	Answer          string            `json:"answer"`
	Category        string            `json:"category"`
	DisplayCategory category.Category `json:"-"`
	Explanation     string            `json:"explanation,omitempty"`
	TimeSec         int               `json:"time_sec,omitempty"`
	ImageURL        string            `json:"imageUrl,omitempty"`
}

// CorrectOption returns the option matching the answer key, or nil.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].Key == q.Answer {
			return &q.Options[i]
		}
	}
	return nil
}

// Band maps a percentage range to a qualitative result label.
type Band struct {
	MinPercent float64 `json:"min_percent"`
	MaxPercent float64 `json:"max_percent"`
	Label      string  `json:"label"`
}

// File is the on-disk bank format.
type File struct {
	Meta      Meta       `json:"meta"`
	Questions []Question `json:"questions"`
}

// Meta carries bank-level metadata and scoring configuration.
type Meta struct {
	Title   string  `json:"title,omitempty"`
	Version string  `json:"version,omitempty"`
	Scoring Scoring `json:"scoring"`
}

// Scoring holds the ordered result band table.
type Scoring struct {
	ResultLabels []Band `json:"result_labels"`
}
