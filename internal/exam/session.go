// Package exam runs the qualifying exam that gates level advancement.
// Unlike a drill, an exam is a single pass in one shuffled order and
// ends on the first wrong answer.
package exam

import (
	"errors"
	"math/rand/v2"

	"github.com/esvanberg/voctrain/internal/trainee"
	"github.com/esvanberg/voctrain/internal/vocab"
)

// ErrMaxLevel is returned when an exam is requested at the terminal
// level, where no further exams exist.
var ErrMaxLevel = errors.New("exam: already at max level")

// State is the exam's lifecycle position.
type State int

const (
	InProgress State = iota
	Passed
	Failed
)

// Prompt is the word currently being asked.
type Prompt struct {
	Word      string
	Position  int // 1-based
	Total     int
}

// Result is the outcome of one exam answer.
type Result struct {
	Word    string
	Answer  string
	Correct bool
}

// Session drives one exam attempt over a level block. Corrections made
// during drills apply identically here. The VocabState is only touched
// on a pass; a failed attempt leaves everything untouched.
type Session struct {
	vs        *trainee.VocabState
	defaults  map[string][]string
	order     []string
	pos       int
	state     State
	levelWas  int
}

// New starts an exam over the block for the trainee's current level.
// It refuses to run at max level; callers normally gate this already.
func New(vs *trainee.VocabState, block []vocab.Entry) (*Session, error) {
	if vs.Master() {
		return nil, ErrMaxLevel
	}

	s := &Session{
		vs:       vs,
		defaults: make(map[string][]string, len(block)),
		order:    make([]string, 0, len(block)),
		levelWas: vs.Level,
	}
	for _, e := range block {
		s.defaults[e.Word] = e.Translations
		s.order = append(s.order, e.Word)
	}
	rand.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})

	if len(s.order) == 0 {
		s.pass()
	}
	return s, nil
}

// State returns the exam state.
func (s *Session) State() State {
	return s.state
}

// LevelTested returns the level this exam was taken for.
func (s *Session) LevelTested() int {
	return s.levelWas
}

// Answered returns how many words were answered correctly.
func (s *Session) Answered() int {
	return s.pos
}

// Total returns the number of words in the exam.
func (s *Session) Total() int {
	return len(s.order)
}

// Current returns the prompt for the next word, or false once the exam
// has ended.
func (s *Session) Current() (Prompt, bool) {
	if s.state != InProgress || s.pos >= len(s.order) {
		return Prompt{}, false
	}
	return Prompt{
		Word:     s.order[s.pos],
		Position: s.pos + 1,
		Total:    len(s.order),
	}, true
}

// Check grades the answer for the current word. The first miss fails
// the exam outright; the remaining words go untested and no state
// changes. Answering every word correctly passes the exam, advancing
// the level and revoking qualification for the new block.
func (s *Session) Check(answer string) Result {
	prompt, ok := s.Current()
	if !ok {
		return Result{}
	}

	result := Result{
		Word:    prompt.Word,
		Answer:  trainee.Normalize(answer),
		Correct: s.vs.Corrections.Matches(prompt.Word, answer, s.defaults[prompt.Word]),
	}

	if !result.Correct {
		s.state = Failed
		return result
	}

	s.pos++
	if s.pos >= len(s.order) {
		s.pass()
	}
	return result
}

func (s *Session) pass() {
	s.state = Passed
	s.vs.LevelUp()
}
