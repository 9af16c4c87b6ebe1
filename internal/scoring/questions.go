package scoring

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

// Question kinds. The kind decides how a raw answer value is interpreted.
const (
	KindScale        = "scale"
	KindSingleChoice = "single_choice"
	KindMultiChoice  = "multi_choice"
	KindGradeGrid    = "grade_grid"
	KindFreeText     = "free_text"
)

// Well-known question ids referenced by the normalizer.
const (
	qSubjectMarks     = "e_01"
	qExtracurriculars = "e_05"
	qParentCareers    = "e_06"
	qWorkStyle        = "e_07"
	qStudyAbroad      = "e_08"
)

// Question is one entry of the questionnaire definition.
type Question struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Type      string         `json:"type"`
	Options   []string       `json:"options,omitempty"`
	RiasecMap map[string]int `json:"riasec_map,omitempty"`
}

//go:embed data/vibematch_questions.json
var vibematchJSON []byte

//go:embed data/edustats_questions.json
var edustatsJSON []byte

// QuestionBank holds the parsed questionnaire and the precomputed maximum
// achievable weighted total per RIASEC letter, used to normalize raw
// interest totals onto [0,100].
type QuestionBank struct {
	questions map[string]Question
	order     []string
	letterMax map[byte]int
}

var (
	defaultBankOnce sync.Once
	defaultBank     *QuestionBank
)

// DefaultQuestionBank returns the embedded questionnaire. It panics if the
// embedded data is malformed, which can only happen at build time.
func DefaultQuestionBank() *QuestionBank {
	defaultBankOnce.Do(func() {
		bank, err := NewQuestionBank(vibematchJSON, edustatsJSON)
		if err != nil {
			panic(fmt.Sprintf("scoring: embedded question bank: %v", err))
		}
		defaultBank = bank
	})
	return defaultBank
}

// NewQuestionBank parses one or more question definition documents into a
// single bank. Duplicate ids across documents are an error.
func NewQuestionBank(docs ...[]byte) (*QuestionBank, error) {
	bank := &QuestionBank{
		questions: make(map[string]Question),
		letterMax: make(map[byte]int),
	}
	for _, doc := range docs {
		var qs []Question
		if err := json.Unmarshal(doc, &qs); err != nil {
			return nil, fmt.Errorf("parse questions: %w", err)
		}
		for _, q := range qs {
			if q.ID == "" {
				return nil, fmt.Errorf("question with empty id")
			}
			if _, ok := bank.questions[q.ID]; ok {
				return nil, fmt.Errorf("duplicate question id %q", q.ID)
			}
			bank.questions[q.ID] = q
			bank.order = append(bank.order, q.ID)
		}
	}
	const maxRating = 5
	for _, q := range bank.questions {
		for letter, weight := range q.RiasecMap {
			if len(letter) != 1 {
				return nil, fmt.Errorf("question %s: bad RIASEC letter %q", q.ID, letter)
			}
			bank.letterMax[letter[0]] += weight * maxRating
		}
	}
	return bank, nil
}

// Question looks up a question by id.
func (b *QuestionBank) Question(id string) (Question, bool) {
	q, ok := b.questions[id]
	return q, ok
}

// Questions returns all questions in definition order.
func (b *QuestionBank) Questions() []Question {
	out := make([]Question, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.questions[id])
	}
	return out
}

// LetterMax returns the maximum weighted total a student can reach for one
// RIASEC letter by answering every mapped question with the top rating.
func (b *QuestionBank) LetterMax(letter byte) int {
	return b.letterMax[letter]
}
