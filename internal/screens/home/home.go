package home

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/esvanberg/voctrain/internal/router"
	"github.com/esvanberg/voctrain/internal/screen"
	drillscreen "github.com/esvanberg/voctrain/internal/screens/drill"
	examscreen "github.com/esvanberg/voctrain/internal/screens/exam"
	"github.com/esvanberg/voctrain/internal/screens/progress"
	"github.com/esvanberg/voctrain/internal/screens/vocpicker"
	"github.com/esvanberg/voctrain/internal/store"
	"github.com/esvanberg/voctrain/internal/trainee"
	"github.com/esvanberg/voctrain/internal/ui/components"
	"github.com/esvanberg/voctrain/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	state    *trainee.State
	st       *store.Store
	vocabDir string
	menu     components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over the shared trainee state.
func New(state *trainee.State, st *store.Store, vocabDir string) *HomeScreen {
	h := &HomeScreen{state: state, st: st, vocabDir: vocabDir}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	vs := h.state.CurrentState()
	hasVocab := vs != nil

	items := []components.MenuItem{
		{
			Label:    "TRAIN",
			Detail:   h.trainDetail(vs),
			Disabled: !hasVocab || vs.Master(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: drillscreen.New(h.state.Current, vs, h.st),
					}
				}
			},
		},
		{
			Label:    "TAKE EXAM",
			Detail:   h.examDetail(vs),
			Disabled: !hasVocab || vs.Master() || !vs.Qualified,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: examscreen.New(h.state.Current, vs, h.st),
					}
				}
			},
		},
		{
			Label: "VOCABULARIES",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: vocpicker.New(h.state, h.vocabDir),
					}
				}
			},
		},
		{
			Label: "PROGRESS",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: progress.New(h.state)}
				}
			},
		},
		{
			Label:  "QUIT",
			Detail: "progress is saved on exit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}
	return items
}

func (h *HomeScreen) trainDetail(vs *trainee.VocabState) string {
	switch {
	case vs == nil:
		return "select a vocabulary first"
	case vs.Master():
		return "max level reached"
	default:
		return fmt.Sprintf("drill the level %d words", vs.Level)
	}
}

func (h *HomeScreen) examDetail(vs *trainee.VocabState) string {
	switch {
	case vs == nil:
		return "select a vocabulary first"
	case vs.Master():
		return "no more exams to take"
	case !vs.Qualified:
		return "train a clean round to qualify"
	default:
		return fmt.Sprintf("level up to %d", vs.Level+1)
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.RefreshMsg); ok {
		h.menu = components.NewMenu(h.buildItems())
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))

	vs := h.state.CurrentState()
	if vs == nil {
		sections = append(sections, theme.Incorrect.Render(
			"No vocabulary selected. Pick one under VOCABULARIES."))
	} else {
		name := filepath.Base(h.state.Current)
		var qual string
		switch {
		case vs.Master():
			qual = "you are max level, no more exams to do"
		case vs.Qualified:
			qual = "qualified for the exam!"
		default:
			qual = "not yet qualified for the exam"
		}
		info := fmt.Sprintf("Current vocabulary: %s\nLevel: %d\n%s",
			name, vs.Level, qual)
		sections = append(sections, theme.Body.Render(info))
	}

	sections = append(sections, h.menu.View())

	return strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
