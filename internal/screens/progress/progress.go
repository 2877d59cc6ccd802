// Package progress shows the trainee's standing across all
// vocabularies ever worked on.
package progress

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/esvanberg/voctrain/internal/screen"
	"github.com/esvanberg/voctrain/internal/trainee"
	"github.com/esvanberg/voctrain/internal/ui/layout"
	"github.com/esvanberg/voctrain/internal/ui/theme"
	"github.com/esvanberg/voctrain/internal/vocab"
)

// ProgressScreen lists level, corrections and exam standing per
// vocabulary file.
type ProgressScreen struct {
	state *trainee.State
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a progress screen over the trainee state.
func New(state *trainee.State) *ProgressScreen {
	return &ProgressScreen{state: state}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	rows := p.state.Rows()
	if len(rows) == 0 {
		return theme.Hint.Render("Nothing yet. Train a vocabulary first.")
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"%-28s  %5s  %11s  %s", "Vocabulary", "Level", "Corrections", "Standing")))
	b.WriteString("\n\n")

	for _, r := range rows {
		b.WriteString(theme.Body.Render(renderRow(r)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("* current vocabulary"))
	return b.String()
}

func renderRow(r trainee.Row) string {
	name := filepath.Base(r.Path)
	if r.Current {
		name += " *"
	}

	var standing string
	switch {
	case r.Master:
		standing = fmt.Sprintf("master (level %d)", vocab.MaxLevel)
	case r.Qualified:
		standing = "qualified for exam"
	default:
		standing = "training"
	}

	return fmt.Sprintf("%-28s  %5d  %11d  %s", name, r.Level, r.Modifications, standing)
}
