// Package drill is the training session screen. It owns the user
// interaction; the round/mastery rules live in internal/drill.
package drill

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/esvanberg/voctrain/internal/drill"
	"github.com/esvanberg/voctrain/internal/router"
	"github.com/esvanberg/voctrain/internal/screen"
	"github.com/esvanberg/voctrain/internal/store"
	"github.com/esvanberg/voctrain/internal/trainee"
	"github.com/esvanberg/voctrain/internal/ui/components"
	"github.com/esvanberg/voctrain/internal/ui/layout"
	"github.com/esvanberg/voctrain/internal/ui/theme"
	"github.com/esvanberg/voctrain/internal/vocab"
)

// phase is the screen's interaction mode.
type phase int

const (
	phaseLoading phase = iota
	phaseAsk
	phaseDecide
	phaseReport
	phaseDone
	phaseError
)

// sessionReadyMsg delivers the loaded block and fresh session.
type sessionReadyMsg struct {
	sess *drill.Session
}

// loadFailedMsg reports a vocabulary loading failure.
type loadFailedMsg struct {
	err error
}

// attemptLoggedMsg is emitted after the history row is written.
type attemptLoggedMsg struct {
	err error
}

// DrillScreen runs one training session over the current level block.
type DrillScreen struct {
	vocabPath string
	vs        *trainee.VocabState
	st        *store.Store

	sess       *drill.Session
	phase      phase
	err        error
	input      components.TextInput
	decideMenu components.Menu
	reportMenu components.Menu

	// pending miss awaiting a correction decision
	missWord   string
	missAnswer string
	missShown  []string

	lastLine  string // feedback line above the prompt
	attemptID string
	startedAt time.Time
	logged    bool
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a drill screen for the given vocabulary and state.
func New(vocabPath string, vs *trainee.VocabState, st *store.Store) *DrillScreen {
	return &DrillScreen{
		vocabPath: vocabPath,
		vs:        vs,
		st:        st,
		input:     components.NewTextInput("Type your translation...", 60),
		attemptID: uuid.New().String(),
		startedAt: time.Now(),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	return tea.Batch(d.loadSession(), d.input.Init())
}

func (d *DrillScreen) loadSession() tea.Cmd {
	return func() tea.Msg {
		table, err := vocab.Load(d.vocabPath)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return sessionReadyMsg{sess: drill.NewSession(d.vs, table.Block(d.vs.Level))}
	}
}

func (d *DrillScreen) Title() string {
	return fmt.Sprintf("Training · %s", filepath.Base(d.vocabPath))
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	switch d.phase {
	case phaseAsk:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit answer"},
			{Key: "Esc", Description: "Abort session"},
		}
	case phaseDecide, phaseReport:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Choose"},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back to menu"},
		}
	}
	return nil
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		d.sess = msg.sess
		// A short final block can be empty and complete on the spot.
		if d.sess.State() == drill.AllCorrect {
			d.phase = phaseDone
			return d, d.logAttempt()
		}
		d.phase = phaseAsk
		return d, nil

	case loadFailedMsg:
		d.phase = phaseError
		d.err = msg.err
		return d, nil

	case attemptLoggedMsg:
		// Logging failures don't interrupt the trainee.
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.phase == phaseAsk {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch d.phase {
	case phaseAsk:
		if msg.String() == "enter" {
			return d, d.submitAnswer()
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd

	case phaseDecide:
		var cmd tea.Cmd
		d.decideMenu, cmd = d.decideMenu.Update(msg)
		return d, cmd

	case phaseReport:
		var cmd tea.Cmd
		d.reportMenu, cmd = d.reportMenu.Update(msg)
		return d, cmd

	case phaseDone, phaseError:
		return d, popAndRefresh()
	}
	return d, nil
}

func (d *DrillScreen) submitAnswer() tea.Cmd {
	answer := d.input.Value()
	result := d.sess.Check(answer)

	if result.Correct {
		d.lastLine = fmt.Sprintf("'%s' — correct!", result.Word)
		d.input.Reset()
		return d.afterAnswer()
	}

	d.missWord = result.Word
	d.missAnswer = result.Answer
	d.missShown = result.Translations
	d.decideMenu = components.NewMenu(d.buildDecisionItems())
	d.phase = phaseDecide
	return nil
}

// buildDecisionItems mirrors the four correction choices: keep the
// verdict, add the answer, reset the word, or replace one translation.
func (d *DrillScreen) buildDecisionItems() []components.MenuItem {
	items := []components.MenuItem{
		{
			Label:  "My translation was wrong",
			Detail: "keep the answer key as it is",
			Action: d.decideAction(drill.Decision{Kind: drill.DecideNothing}),
		},
		{
			Label:  fmt.Sprintf("Add '%s' to the translations", d.missAnswer),
			Action: d.decideAction(drill.Decision{Kind: drill.DecideAdd}),
		},
		{
			Label:  fmt.Sprintf("Reset '%s' to its original translations", d.missWord),
			Action: d.decideAction(drill.Decision{Kind: drill.DecideReset}),
		},
	}
	for _, tr := range d.missShown {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("Replace '%s' with '%s'", tr, d.missAnswer),
			Action: d.decideAction(drill.Decision{Kind: drill.DecideReplace, Target: tr}),
		})
	}
	return items
}

func (d *DrillScreen) decideAction(decision drill.Decision) func() tea.Cmd {
	return func() tea.Cmd {
		d.sess.Decide(d.missWord, d.missAnswer, decision)
		d.lastLine = fmt.Sprintf("'%s' — noted.", d.missWord)
		d.input.Reset()
		return d.afterAnswer()
	}
}

// afterAnswer moves to the next prompt or handles the end of a round.
func (d *DrillScreen) afterAnswer() tea.Cmd {
	switch d.sess.State() {
	case drill.RoundInProgress:
		d.phase = phaseAsk
		return nil

	case drill.AllCorrect:
		d.phase = phaseDone
		return d.logAttempt()

	case drill.RoundSomeWrong:
		d.reportMenu = components.NewMenu([]components.MenuItem{
			{
				Label: "Continue with the difficult words",
				Action: func() tea.Cmd {
					d.sess.NextRound()
					d.lastLine = ""
					d.phase = phaseAsk
					return nil
				},
			},
			{
				Label: "Exit to the main menu",
				Action: func() tea.Cmd {
					return tea.Batch(d.logAttempt(), popAndRefresh())
				},
			},
		})
		d.phase = phaseReport
		return nil
	}
	return nil
}

func (d *DrillScreen) logAttempt() tea.Cmd {
	if d.logged || d.st == nil {
		return nil
	}
	d.logged = true
	attempt := store.Attempt{
		ID:         d.attemptID,
		VocabPath:  d.vocabPath,
		Kind:       store.KindDrill,
		Level:      d.sess.Level(),
		Total:      d.sess.BlockSize(),
		Correct:    d.sess.MasteredTotal(),
		Passed:     d.sess.State() == drill.AllCorrect,
		StartedAt:  d.startedAt,
		FinishedAt: time.Now(),
	}
	return func() tea.Msg {
		return attemptLoggedMsg{err: d.st.LogAttempt(context.Background(), attempt)}
	}
}

func (d *DrillScreen) View(width, height int) string {
	switch d.phase {
	case phaseLoading:
		return theme.Hint.Render("Loading vocabulary...")

	case phaseError:
		return theme.Incorrect.Render(fmt.Sprintf("Could not start the session:\n%v", d.err))

	case phaseAsk:
		return d.viewAsk()

	case phaseDecide:
		return d.viewDecide()

	case phaseReport:
		return d.viewReport()

	case phaseDone:
		return d.viewDone()
	}
	return ""
}

func (d *DrillScreen) viewAsk() string {
	var sections []string

	if d.lastLine != "" {
		sections = append(sections, theme.Hint.Render(d.lastLine))
	}

	prompt, ok := d.sess.Current()
	if !ok {
		return theme.Hint.Render("...")
	}

	sections = append(sections,
		theme.Subtitle.Render(fmt.Sprintf("Word %d of %d", prompt.Position, prompt.RoundSize)),
		theme.Title.Render(prompt.Word),
		d.input.View(),
	)

	return strings.Join(sections, "\n\n")
}

func (d *DrillScreen) viewDecide() string {
	verdict := theme.Incorrect.Render(fmt.Sprintf(
		"'%s' is not a known translation of '%s'.", d.missAnswer, d.missWord))
	known := theme.Body.Render(
		"Known translations: " + strings.Join(d.missShown, ", "))

	return strings.Join([]string{
		verdict,
		known,
		d.decideMenu.View(),
	}, "\n\n")
}

func (d *DrillScreen) viewReport() string {
	report := d.sess.Report()

	var sections []string
	sections = append(sections, theme.Subtitle.Render(fmt.Sprintf(
		"Round done: %d of %d correct.", report.Correct, report.Total)))

	var missed strings.Builder
	missed.WriteString("Still to master:\n")
	for _, m := range report.Missed {
		missed.WriteString(fmt.Sprintf("  %s — %s\n", m.Word, strings.Join(m.Translations, ", ")))
	}
	sections = append(sections, theme.Body.Render(missed.String()))
	sections = append(sections, d.reportMenu.View())

	return strings.Join(sections, "\n\n")
}

func (d *DrillScreen) viewDone() string {
	var sections []string
	sections = append(sections, theme.Correct.Render("You seem to know all the words!"))

	switch {
	case d.sess.QualifiedNow():
		sections = append(sections, theme.Body.Render(
			"You are now qualified for the exam. Take it from the main menu."))
	case d.vs.Master():
		sections = append(sections, theme.Body.Render(
			"You are at the highest level. There is nothing left to prove."))
	case d.vs.Qualified:
		sections = append(sections, theme.Body.Render(
			"You are still qualified for the exam."))
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
