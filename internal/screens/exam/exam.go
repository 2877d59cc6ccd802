// Package exam is the level exam screen. One pass over the block,
// the first miss fails; the pass/fail rules live in internal/exam.
package exam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/esvanberg/voctrain/internal/exam"
	"github.com/esvanberg/voctrain/internal/router"
	"github.com/esvanberg/voctrain/internal/screen"
	"github.com/esvanberg/voctrain/internal/store"
	"github.com/esvanberg/voctrain/internal/trainee"
	"github.com/esvanberg/voctrain/internal/ui/components"
	"github.com/esvanberg/voctrain/internal/ui/layout"
	"github.com/esvanberg/voctrain/internal/ui/theme"
	"github.com/esvanberg/voctrain/internal/vocab"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAsk
	phaseVerdict
	phaseError
)

type sessionReadyMsg struct {
	sess *exam.Session
}

type loadFailedMsg struct {
	err error
}

type attemptLoggedMsg struct {
	err error
}

// ExamScreen runs the level exam for the current vocabulary.
type ExamScreen struct {
	vocabPath string
	vs        *trainee.VocabState
	st        *store.Store

	sess  *exam.Session
	phase phase
	err   error
	input components.TextInput

	// last miss shown on the failed verdict
	missWord   string
	missAnswer string

	attemptID string
	startedAt time.Time
	logged    bool
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates an exam screen for the given vocabulary and state.
func New(vocabPath string, vs *trainee.VocabState, st *store.Store) *ExamScreen {
	return &ExamScreen{
		vocabPath: vocabPath,
		vs:        vs,
		st:        st,
		input:     components.NewTextInput("Type your translation...", 60),
		attemptID: uuid.New().String(),
		startedAt: time.Now(),
	}
}

func (e *ExamScreen) Init() tea.Cmd {
	return tea.Batch(e.loadSession(), e.input.Init())
}

func (e *ExamScreen) loadSession() tea.Cmd {
	return func() tea.Msg {
		table, err := vocab.Load(e.vocabPath)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		sess, err := exam.New(e.vs, table.Block(e.vs.Level))
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return sessionReadyMsg{sess: sess}
	}
}

func (e *ExamScreen) Title() string {
	return fmt.Sprintf("Exam · %s", filepath.Base(e.vocabPath))
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	switch e.phase {
	case phaseAsk:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit answer"},
			{Key: "Esc", Description: "Abort exam"},
		}
	case phaseVerdict:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back to menu"},
		}
	}
	return nil
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		e.sess = msg.sess
		if e.sess.State() != exam.InProgress {
			// Short final blocks can pass on the spot.
			e.phase = phaseVerdict
			return e, e.logAttempt()
		}
		e.phase = phaseAsk
		return e, nil

	case loadFailedMsg:
		e.phase = phaseError
		e.err = msg.err
		return e, nil

	case attemptLoggedMsg:
		return e, nil

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	if e.phase == phaseAsk {
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return e, cmd
	}
	return e, nil
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch e.phase {
	case phaseAsk:
		if msg.String() == "enter" {
			return e, e.submitAnswer()
		}
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return e, cmd

	case phaseVerdict, phaseError:
		return e, popAndRefresh()
	}
	return e, nil
}

func (e *ExamScreen) submitAnswer() tea.Cmd {
	answer := e.input.Value()
	result := e.sess.Check(answer)
	e.input.Reset()

	if !result.Correct {
		e.missWord = result.Word
		e.missAnswer = result.Answer
	}

	if e.sess.State() != exam.InProgress {
		e.phase = phaseVerdict
		return e.logAttempt()
	}
	return nil
}

func (e *ExamScreen) logAttempt() tea.Cmd {
	if e.logged || e.st == nil {
		return nil
	}
	e.logged = true
	attempt := store.Attempt{
		ID:         e.attemptID,
		VocabPath:  e.vocabPath,
		Kind:       store.KindExam,
		Level:      e.sess.LevelTested(),
		Total:      e.sess.Total(),
		Correct:    e.sess.Answered(),
		Passed:     e.sess.State() == exam.Passed,
		StartedAt:  e.startedAt,
		FinishedAt: time.Now(),
	}
	return func() tea.Msg {
		return attemptLoggedMsg{err: e.st.LogAttempt(context.Background(), attempt)}
	}
}

func (e *ExamScreen) View(width, height int) string {
	switch e.phase {
	case phaseLoading:
		return theme.Hint.Render("Loading vocabulary...")

	case phaseError:
		return theme.Incorrect.Render(fmt.Sprintf("Could not start the exam:\n%v", e.err))

	case phaseAsk:
		return e.viewAsk()

	case phaseVerdict:
		return e.viewVerdict()
	}
	return ""
}

func (e *ExamScreen) viewAsk() string {
	prompt, ok := e.sess.Current()
	if !ok {
		return theme.Hint.Render("...")
	}

	return strings.Join([]string{
		theme.Incorrect.Render("Exam: a single mistake fails. No second chances."),
		theme.Subtitle.Render(fmt.Sprintf("Word %d of %d", prompt.Position, prompt.Total)),
		theme.Title.Render(prompt.Word),
		e.input.View(),
	}, "\n\n")
}

func (e *ExamScreen) viewVerdict() string {
	var sections []string

	if e.sess.State() == exam.Passed {
		sections = append(sections,
			theme.Correct.Render("Exam passed!"),
			theme.Body.Render(fmt.Sprintf("You moved up to level %d.", e.vs.Level)))
		if e.vs.Master() {
			sections = append(sections, theme.Body.Render(
				"That was the last one. You have mastered this vocabulary."))
		}
	} else {
		sections = append(sections,
			theme.Incorrect.Render("Exam failed."),
			theme.Body.Render(fmt.Sprintf(
				"'%s' was not a translation of '%s'. Your level stays at %d.\n"+
					"You may try again right away.",
				e.missAnswer, e.missWord, e.vs.Level)))
	}

	sections = append(sections, theme.Hint.Render("Press any key to return to the menu."))
	return strings.Join(sections, "\n\n")
}

func popAndRefresh() tea.Cmd {
	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return screen.RefreshMsg{} },
	)
}
