package drill

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/esvanberg/voctrain/internal/drill"
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
	{Word: "hund", Translations: []string{"dog"}},
	{Word: "katze", Translations: []string{"cat"}},
	{Word: "pferd", Translations: []string{"horse"}},
}

func translationsOf(word string) string {
	for _, e := range testBlock {
		if e.Word == word {
			return e.Translations[0]
		}
	}
	return ""
}

// testDrillScreen builds a screen with a ready session, skipping the
// file-loading command.
func testDrillScreen(t *testing.T, vs *trainee.VocabState, block []vocab.Entry) *DrillScreen {
	t.Helper()
	d := New("animals_voc.txt", vs, nil)
	scr, _ := d.Update(sessionReadyMsg{sess: drill.NewSession(vs, block)})
	return scr.(*DrillScreen)
}

func submit(t *testing.T, d *DrillScreen, answer string) {
	t.Helper()
	d.input.Model.SetValue(answer)
	d.Update(specialKey(tea.KeyEnter))
}

func TestDrillScreen_Title(t *testing.T) {
	d := New("animals_voc.txt", trainee.NewVocabState(), nil)
	if d.Title() != "Training · animals_voc.txt" {
		t.Errorf("Title = %q", d.Title())
	}
}

func TestDrillScreen_AllCorrectQualifies(t *testing.T) {
	vs := trainee.NewVocabState()
	d := testDrillScreen(t, vs, testBlock)

	for d.phase == phaseAsk {
		prompt, ok := d.sess.Current()
		if !ok {
			t.Fatal("no current prompt in ask phase")
		}
		submit(t, d, translationsOf(prompt.Word))
	}

	if d.phase != phaseDone {
		t.Fatalf("phase = %v, want phaseDone", d.phase)
	}
	if !vs.Qualified {
		t.Error("expected qualification after a perfect session")
	}
	view := d.View(80, 24)
	if !strings.Contains(view, "know all the words") {
		t.Errorf("done view missing completion text: %q", view)
	}
}

func TestDrillScreen_MissOpensDecisionMenu(t *testing.T) {
	vs := trainee.NewVocabState()
	d := testDrillScreen(t, vs, testBlock)

	submit(t, d, "wrong answer")

	if d.phase != phaseDecide {
		t.Fatalf("phase = %v, want phaseDecide", d.phase)
	}
	// Nothing, add, reset, plus one replace per shown translation.
	want := 3 + len(d.missShown)
	if len(d.decideMenu.Items) != want {
		t.Errorf("decision items = %d, want %d", len(d.decideMenu.Items), want)
	}
	view := d.View(80, 24)
	if !strings.Contains(view, "not a known translation") {
		t.Errorf("decide view missing verdict: %q", view)
	}
}

func TestDrillScreen_DecideAddAcceptsNextRound(t *testing.T) {
	vs := trainee.NewVocabState()
	d := testDrillScreen(t, vs, testBlock)

	prompt, _ := d.sess.Current()
	missed := prompt.Word
	submit(t, d, "doggo")

	// Second item adds the answer to the translations.
	d.Update(keyPress('j'))
	d.Update(specialKey(tea.KeyEnter))

	if !d.vs.Corrections.Matches(missed, "doggo", nil) {
		t.Error("expected 'doggo' to be accepted after the add decision")
	}
}

func TestDrillScreen_ReportThenNextRound(t *testing.T) {
	vs := trainee.NewVocabState()
	d := testDrillScreen(t, vs, testBlock)

	for d.phase == phaseAsk || d.phase == phaseDecide {
		if d.phase == phaseDecide {
			// Keep the answer key as it is.
			d.Update(specialKey(tea.KeyEnter))
			continue
		}
		submit(t, d, "wrong answer")
	}

	if d.phase != phaseReport {
		t.Fatalf("phase = %v, want phaseReport", d.phase)
	}
	view := d.View(80, 24)
	if !strings.Contains(view, "0 of 3 correct") {
		t.Errorf("report view missing tally: %q", view)
	}

	// First report item continues with the remaining words.
	d.Update(specialKey(tea.KeyEnter))
	if d.phase != phaseAsk {
		t.Fatalf("phase = %v, want phaseAsk after continue", d.phase)
	}
	if prompt, ok := d.sess.Current(); !ok || prompt.RoundSize != 3 {
		t.Errorf("expected a fresh round over all 3 missed words")
	}
}

func TestDrillScreen_EmptyBlockCompletesImmediately(t *testing.T) {
	vs := trainee.NewVocabState()
	d := New("animals_voc.txt", vs, nil)
	scr, _ := d.Update(sessionReadyMsg{sess: drill.NewSession(vs, nil)})
	d = scr.(*DrillScreen)

	if d.phase != phaseDone {
		t.Fatalf("phase = %v, want phaseDone for an empty block", d.phase)
	}
}

func TestDrillScreen_DoneAnyKeyPops(t *testing.T) {
	vs := trainee.NewVocabState()
	d := testDrillScreen(t, vs, nil)

	_, cmd := d.Update(keyPress(' '))
	if cmd == nil {
		t.Error("expected a navigation command from the done phase")
	}
}
