package progress

import (
	"strings"
	"testing"

	"github.com/esvanberg/voctrain/internal/trainee"
)

func TestView_Empty(t *testing.T) {
	p := New(trainee.NewState())
	view := p.View(80, 24)
	if !strings.Contains(view, "Nothing yet") {
		t.Errorf("empty view = %q", view)
	}
}

func TestView_RowsAndCurrentMarker(t *testing.T) {
	state := trainee.NewState()
	vs := state.StateFor("/voc/animals_voc.txt")
	vs.Level = 3
	vs.Qualified = true
	state.StateFor("/voc/food_voc.txt")
	state.Current = "/voc/animals_voc.txt"

	view := New(state).View(80, 24)

	if !strings.Contains(view, "animals_voc.txt *") {
		t.Errorf("missing current marker: %q", view)
	}
	if !strings.Contains(view, "qualified for exam") {
		t.Errorf("missing standing: %q", view)
	}
	if !strings.Contains(view, "food_voc.txt") {
		t.Errorf("missing second vocabulary: %q", view)
	}
}

func TestRenderRow_Master(t *testing.T) {
	row := trainee.Row{Path: "x_voc.txt", Level: 10, Master: true}
	line := renderRow(row)
	if !strings.Contains(line, "master") {
		t.Errorf("renderRow = %q", line)
	}
}
