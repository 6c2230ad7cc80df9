// Package catalog holds the fixed, ordered set of quiz questions.
package catalog

import (
	"errors"
	"fmt"
	"math"
)

// Question is a single calibration question. The prompt and unit fields
// are display data; only TrueValue participates in scoring.
type Question struct {
	ID        string
	Prompt    string
	TrueValue float64
	Unit      string
	UnitKind  string // set only when the unit toggles with the unit system
}

// Catalog is an immutable, ordered question list with an ID lookup.
// Indices are stable for the lifetime of the process.
type Catalog struct {
	questions []Question
	byID      map[string]int
}

// New validates the question list and builds the lookup table. Unknown
// or duplicate IDs are caught here, at load time, not during a run.
func New(questions []Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, errors.New("catalog: question list is empty")
	}

	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("catalog: question at position %d has no id", i)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		if math.IsNaN(q.TrueValue) || math.IsInf(q.TrueValue, 0) {
			return nil, fmt.Errorf("catalog: question %q has a non-finite true value", q.ID)
		}
		byID[q.ID] = i
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Catalog{questions: qs, byID: byID}, nil
}

// Default returns the built-in question set.
func Default() *Catalog {
	c, err := New(defaultQuestions)
	if err != nil {
		panic("catalog: invalid built-in question set: " + err.Error())
	}
	return c
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// At returns the question at the given position.
func (c *Catalog) At(index int) (Question, bool) {
	if index < 0 || index >= len(c.questions) {
		return Question{}, false
	}
	return c.questions[index], true
}

// Lookup resolves a question by ID.
func (c *Catalog) Lookup(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// Questions returns the questions in catalog order.
func (c *Catalog) Questions() []Question {
	qs := make([]Question, len(c.questions))
	copy(qs, c.questions)
	return qs
}
