package trainee

import (
	"sort"

	"github.com/esvanberg/voctrain/internal/vocab"
)

// VocabState is the persistent progress for one vocabulary file.
// Invariant: Qualified is only ever true below vocab.MaxLevel.
type VocabState struct {
	Level       int
	Qualified   bool
	Corrections *Corrections
}

// NewVocabState returns a fresh level-0 state.
func NewVocabState() *VocabState {
	return &VocabState{Corrections: NewCorrections()}
}

// Qualify marks the trainee as allowed to take the exam. It reports
// whether the flag changed; at max level there is no exam left to
// qualify for and nothing happens.
func (v *VocabState) Qualify() bool {
	if v.Qualified || v.Level >= vocab.MaxLevel {
		return false
	}
	v.Qualified = true
	return true
}

// LevelUp advances one level after a passed exam. Qualification is
// always revoked: the new level's words must be drilled before the
// next exam.
func (v *VocabState) LevelUp() {
	v.Level++
	v.Qualified = false
}

// Master reports whether the terminal level has been reached.
func (v *VocabState) Master() bool {
	return v.Level >= vocab.MaxLevel
}

// State is the whole persisted aggregate: the selected vocabulary and
// the per-vocabulary progress for every vocabulary ever touched. It is
// owned by the foreground process for the run and flushed to the store
// at shutdown.
type State struct {
	Current string
	Vocabs  map[string]*VocabState
}

// NewState returns an empty trainee state.
func NewState() *State {
	return &State{Vocabs: make(map[string]*VocabState)}
}

// StateFor returns the progress for a vocabulary path, creating a
// fresh level-0 state on first touch.
func (s *State) StateFor(path string) *VocabState {
	vs, ok := s.Vocabs[path]
	if !ok {
		vs = NewVocabState()
		s.Vocabs[path] = vs
	}
	return vs
}

// CurrentState returns the progress for the selected vocabulary, or
// nil when none is selected.
func (s *State) CurrentState() *VocabState {
	if s.Current == "" {
		return nil
	}
	return s.StateFor(s.Current)
}

// Row is one line of the progress overview.
type Row struct {
	Path          string
	Level         int
	Modifications int
	Qualified     bool
	Master        bool
	Current       bool
}

// Rows builds the progress overview, sorted by path.
func (s *State) Rows() []Row {
	rows := make([]Row, 0, len(s.Vocabs))
	for path, vs := range s.Vocabs {
		rows = append(rows, Row{
			Path:          path,
			Level:         vs.Level,
			Modifications: vs.Corrections.ModificationCount(),
			Qualified:     vs.Qualified,
			Master:        vs.Master(),
			Current:       path == s.Current,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Path < rows[j].Path })
	return rows
}
