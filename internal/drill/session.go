// Package drill runs the repeated-round training sessions. A session
// works through one level block, shuffling the remaining words each
// round, until every word has been answered correctly once in a round
// or the trainee gives up.
package drill

import (
	"math/rand/v2"

	"github.com/esvanberg/voctrain/internal/trainee"
	"github.com/esvanberg/voctrain/internal/vocab"
)

// State is the drill session's position in its round lifecycle.
type State int

const (
	// RoundInProgress means words are still being prompted this round.
	RoundInProgress State = iota

	// RoundSomeWrong means the round finished with words left over;
	// the trainee picks NextRound or walks away.
	RoundSomeWrong

	// AllCorrect means a round ended with nothing left. The session is
	// done and qualification has been granted where applicable.
	AllCorrect
)

// Prompt is the word currently being asked.
type Prompt struct {
	Word      string
	Position  int // 1-based position within the round
	RoundSize int
}

// Result is the outcome of checking one answer.
type Result struct {
	Word    string
	Answer  string
	Correct bool
	// Translations is the effective translation set at the time of the
	// answer, shown to the trainee on a miss.
	Translations []string
}

// Missed pairs a still-unmastered word with its current translations.
type Missed struct {
	Word         string
	Translations []string
}

// Report summarizes a finished round.
type Report struct {
	Correct int
	Total   int
	Missed  []Missed
}

// Session drives the drill for one level block. It owns no persistent
// state of its own; level and corrections live in the VocabState
// passed in, which the session mutates directly.
type Session struct {
	vs        *trainee.VocabState
	remaining map[string][]string
	order     []string
	pos       int
	roundSize int
	state     State

	blockSize     int
	masteredTotal int
	qualifiedNow  bool
}

// NewSession starts a drill over the given block. An empty block
// completes immediately.
func NewSession(vs *trainee.VocabState, block []vocab.Entry) *Session {
	s := &Session{
		vs:        vs,
		remaining: make(map[string][]string, len(block)),
		blockSize: len(block),
	}
	for _, e := range block {
		s.remaining[e.Word] = e.Translations
	}
	s.startRound()
	return s
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Level returns the level being drilled.
func (s *Session) Level() int {
	return s.vs.Level
}

// QualifiedNow reports whether this session earned the exam
// qualification.
func (s *Session) QualifiedNow() bool {
	return s.qualifiedNow
}

// MasteredTotal returns how many of the block's words have been
// answered correctly so far.
func (s *Session) MasteredTotal() int {
	return s.masteredTotal
}

// BlockSize returns the number of words the session started with.
func (s *Session) BlockSize() int {
	return s.blockSize
}

// Current returns the prompt for the next word of the round, or false
// when no round is in progress.
func (s *Session) Current() (Prompt, bool) {
	if s.state != RoundInProgress || s.pos >= len(s.order) {
		return Prompt{}, false
	}
	return Prompt{
		Word:      s.order[s.pos],
		Position:  s.pos + 1,
		RoundSize: s.roundSize,
	}, true
}

// Check grades the answer for the current word and advances the round.
// A correct answer removes the word from the session; a wrong answer
// keeps it for the next round. Either way the round moves on, ending
// when its last word has been answered.
func (s *Session) Check(answer string) Result {
	prompt, ok := s.Current()
	if !ok {
		return Result{}
	}

	defaults := s.remaining[prompt.Word]
	result := Result{
		Word:         prompt.Word,
		Answer:       trainee.Normalize(answer),
		Correct:      s.vs.Corrections.Matches(prompt.Word, answer, defaults),
		Translations: s.vs.Corrections.Effective(prompt.Word, defaults),
	}

	if result.Correct {
		delete(s.remaining, prompt.Word)
		s.masteredTotal++
	}

	s.pos++
	if s.pos >= len(s.order) {
		s.finishRound()
	}
	return result
}

// Decide applies the trainee's correction decision for a missed word.
// Exactly one decision is applied per miss; Nothing is the default.
func (s *Session) Decide(word, answer string, d Decision) {
	answer = trainee.Normalize(answer)
	switch d.Kind {
	case DecideNothing:
	case DecideAdd:
		s.vs.Corrections.Apply(word, []string{answer}, nil)
	case DecideReset:
		s.vs.Corrections.Clear(word)
	case DecideReplace:
		s.vs.Corrections.Apply(word, []string{answer}, []string{d.Target})
	}
}

// Report describes the round that just finished. Missed words keep
// their shuffled round order. Only meaningful after a round ends.
func (s *Session) Report() Report {
	r := Report{
		Correct: s.roundSize - len(s.remaining),
		Total:   s.roundSize,
	}
	for _, word := range s.order {
		defaults, ok := s.remaining[word]
		if !ok {
			continue
		}
		r.Missed = append(r.Missed, Missed{
			Word:         word,
			Translations: s.vs.Corrections.Effective(word, defaults),
		})
	}
	return r
}

// NextRound starts a new round over the words still remaining. Only
// valid in RoundSomeWrong.
func (s *Session) NextRound() {
	if s.state != RoundSomeWrong {
		return
	}
	s.startRound()
}

func (s *Session) startRound() {
	s.order = make([]string, 0, len(s.remaining))
	for w := range s.remaining {
		s.order = append(s.order, w)
	}
	rand.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	s.pos = 0
	s.roundSize = len(s.order)
	s.state = RoundInProgress

	if s.roundSize == 0 {
		s.finishRound()
	}
}

func (s *Session) finishRound() {
	if len(s.remaining) == 0 {
		s.state = AllCorrect
		s.qualifiedNow = s.vs.Qualify()
		return
	}
	s.state = RoundSomeWrong
}
