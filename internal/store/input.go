package store

import (
	"github.com/atomicstack/tokencalc/internal/expression"
	"github.com/atomicstack/tokencalc/internal/suggest"
)

// InputStore holds the editor's committed state: the input text, the
// suggestions currently shown for it and the cached calculation result.
type InputStore interface {
	Text() string
	SetInput(string)
	Suggestions() []suggest.Record
	SetSuggestions([]suggest.Record)
	Result() expression.Result
	CalculateValues(text string) expression.Result
}

type inputStore struct {
	text        string
	suggestions []suggest.Record
	result      expression.Result
	evaluator   expression.Evaluator
}

// NewInputStore returns an empty store. A nil evaluator selects the default.
func NewInputStore(ev expression.Evaluator) InputStore {
	if ev == nil {
		ev = expression.NewEvaluator()
	}
	return &inputStore{evaluator: ev}
}

func (s *inputStore) Text() string {
	return s.text
}

func (s *inputStore) SetInput(text string) {
	s.text = text
}

func (s *inputStore) Suggestions() []suggest.Record {
	return suggest.CloneRecords(s.suggestions)
}

func (s *inputStore) SetSuggestions(records []suggest.Record) {
	s.suggestions = suggest.CloneRecords(records)
}

func (s *inputStore) Result() expression.Result {
	return s.result
}

// CalculateValues evaluates text and caches the outcome. The text itself is
// not stored.
func (s *inputStore) CalculateValues(text string) expression.Result {
	s.result = expression.Calculate(text, s.evaluator)
	return s.result
}
