// Package vocpicker lets the trainee choose which vocabulary file to
// train. Files are discovered in the configured directory by their
// _voc.txt suffix.
package vocpicker

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/esvanberg/voctrain/internal/router"
	"github.com/esvanberg/voctrain/internal/screen"
	"github.com/esvanberg/voctrain/internal/trainee"
	"github.com/esvanberg/voctrain/internal/ui/components"
	"github.com/esvanberg/voctrain/internal/ui/layout"
	"github.com/esvanberg/voctrain/internal/ui/theme"
	"github.com/esvanberg/voctrain/internal/vocab"
)

// filesMsg carries the discovery result into the screen.
type filesMsg struct {
	Files []vocab.File
	Err   error
}

// PickerScreen lists discovered vocabulary files.
type PickerScreen struct {
	state *trainee.State
	dir   string
	files []vocab.File
	menu  components.Menu
	err   error
	ready bool
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates the picker over the shared trainee state.
func New(state *trainee.State, dir string) *PickerScreen {
	return &PickerScreen{state: state, dir: dir}
}

func (p *PickerScreen) Init() tea.Cmd {
	return func() tea.Msg {
		files, err := vocab.Discover(p.dir)
		return filesMsg{Files: files, Err: err}
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case filesMsg:
		p.ready = true
		p.err = msg.Err
		p.files = msg.Files
		p.menu = components.NewMenu(p.buildItems())
		return p, nil
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) buildItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(p.files))
	for _, f := range p.files {
		levels := (f.Words + vocab.BlockSize - 1) / vocab.BlockSize
		items = append(items, components.MenuItem{
			Label:  f.Name,
			Detail: fmt.Sprintf("%d words · %d levels", f.Words, levels),
			Action: p.selectAction(f.Path),
		})
	}
	return items
}

// selectAction records the choice and returns to a rebuilt home menu.
func (p *PickerScreen) selectAction(path string) func() tea.Cmd {
	return func() tea.Cmd {
		p.state.Current = path
		// Touch the state so the vocabulary shows up in the overview
		// even before the first drill.
		p.state.StateFor(path)
		return tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return screen.RefreshMsg{} },
		)
	}
}

func (p *PickerScreen) View(width, height int) string {
	if !p.ready {
		return theme.Hint.Render("Scanning for vocabularies...")
	}
	if p.err != nil {
		return theme.Incorrect.Render("Could not read vocabulary directory:\n" + p.err.Error())
	}
	if len(p.files) == 0 {
		return theme.Incorrect.Render(fmt.Sprintf(
			"No vocabulary file found in %s.\nVocabulary file names must end with %q.",
			p.dir, vocab.FileSuffix))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Choose a vocabulary to train"))
	b.WriteString("\n\n")
	b.WriteString(p.menu.View())
	return b.String()
}

func (p *PickerScreen) Title() string {
	return "Vocabularies"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
