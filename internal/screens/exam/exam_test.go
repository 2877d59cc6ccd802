package exam

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/esvanberg/voctrain/internal/exam"
	"github.com/esvanberg/voctrain/internal/trainee"
	"github.com/esvanberg/voctrain/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var testBlock = []vocab.Entry{
	{Word: "brot", Translations: []string{"bread"}},
	{Word: "milch", Translations: []string{"milk"}},
}

func translationsOf(word string) string {
	for _, e := range testBlock {
		if e.Word == word {
			return e.Translations[0]
		}
	}
	return ""
}

func testExamScreen(t *testing.T, vs *trainee.VocabState) *ExamScreen {
	t.Helper()
	sess, err := exam.New(vs, testBlock)
	if err != nil {
		t.Fatalf("exam.New: %v", err)
	}
	e := New("food_voc.txt", vs, nil)
	scr, _ := e.Update(sessionReadyMsg{sess: sess})
	return scr.(*ExamScreen)
}

func submit(t *testing.T, e *ExamScreen, answer string) {
	t.Helper()
	e.input.Model.SetValue(answer)
	e.Update(specialKey(tea.KeyEnter))
}

func TestExamScreen_PassRaisesLevel(t *testing.T) {
	vs := trainee.NewVocabState()
	vs.Qualified = true
	e := testExamScreen(t, vs)

	for e.phase == phaseAsk {
		prompt, ok := e.sess.Current()
		if !ok {
			t.Fatal("no current prompt in ask phase")
		}
		submit(t, e, translationsOf(prompt.Word))
	}

	if e.phase != phaseVerdict {
		t.Fatalf("phase = %v, want phaseVerdict", e.phase)
	}
	if vs.Level != 1 {
		t.Errorf("Level = %d, want 1 after pass", vs.Level)
	}
	if vs.Qualified {
		t.Error("qualification should be revoked for the new level")
	}
	view := e.View(80, 24)
	if !strings.Contains(view, "Exam passed!") {
		t.Errorf("verdict view missing pass text: %q", view)
	}
}

func TestExamScreen_FirstMissFails(t *testing.T) {
	vs := trainee.NewVocabState()
	vs.Qualified = true
	e := testExamScreen(t, vs)

	submit(t, e, "wrong answer")

	if e.phase != phaseVerdict {
		t.Fatalf("phase = %v, want phaseVerdict after a miss", e.phase)
	}
	if vs.Level != 0 {
		t.Errorf("Level = %d, want 0 after fail", vs.Level)
	}
	if !vs.Qualified {
		t.Error("a failed exam must not touch qualification")
	}
	view := e.View(80, 24)
	if !strings.Contains(view, "Exam failed.") {
		t.Errorf("verdict view missing fail text: %q", view)
	}
}

func TestExamScreen_VerdictAnyKeyPops(t *testing.T) {
	vs := trainee.NewVocabState()
	vs.Qualified = true
	e := testExamScreen(t, vs)
	submit(t, e, "wrong answer")

	_, cmd := e.Update(keyPress(' '))
	if cmd == nil {
		t.Error("expected a navigation command from the verdict phase")
	}
}

func TestExamScreen_Title(t *testing.T) {
	e := New("food_voc.txt", trainee.NewVocabState(), nil)
	if e.Title() != "Exam · food_voc.txt" {
		t.Errorf("Title = %q", e.Title())
	}
}
