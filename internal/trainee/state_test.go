package trainee

import (
	"testing"

	"github.com/esvanberg/voctrain/internal/vocab"
)

func TestQualify(t *testing.T) {
	vs := NewVocabState()

	if !vs.Qualify() {
		t.Error("Qualify on fresh state should report a change")
	}
	if !vs.Qualified {
		t.Error("Qualified should be true")
	}
	if vs.Qualify() {
		t.Error("second Qualify should be a no-op")
	}
}

func TestQualify_AtMaxLevel(t *testing.T) {
	vs := NewVocabState()
	vs.Level = vocab.MaxLevel

	if vs.Qualify() {
		t.Error("Qualify at max level should do nothing")
	}
	if vs.Qualified {
		t.Error("Qualified must stay false at max level")
	}
	if !vs.Master() {
		t.Error("Master should be true at max level")
	}
}

func TestLevelUp(t *testing.T) {
	vs := NewVocabState()
	vs.Level = 3
	vs.Qualified = true

	vs.LevelUp()

	if vs.Level != 4 {
		t.Errorf("Level = %d, want 4", vs.Level)
	}
	if vs.Qualified {
		t.Error("LevelUp must revoke qualification")
	}
}

func TestStateFor_CreatesOnFirstTouch(t *testing.T) {
	s := NewState()

	vs := s.StateFor("animals_voc.txt")
	if vs == nil || vs.Level != 0 || vs.Qualified {
		t.Fatalf("fresh state = %+v, want level 0, unqualified", vs)
	}
	if s.StateFor("animals_voc.txt") != vs {
		t.Error("StateFor should return the same state on repeat")
	}
}

func TestCurrentState(t *testing.T) {
	s := NewState()

	if s.CurrentState() != nil {
		t.Error("CurrentState with no selection should be nil")
	}

	s.Current = "animals_voc.txt"
	if s.CurrentState() == nil {
		t.Error("CurrentState after selection should not be nil")
	}
}

func TestRows(t *testing.T) {
	s := NewState()
	s.Current = "b_voc.txt"

	a := s.StateFor("a_voc.txt")
	a.Level = vocab.MaxLevel
	b := s.StateFor("b_voc.txt")
	b.Level = 2
	b.Qualified = true
	b.Corrections.Apply("dog", []string{"doggo"}, []string{"hund"})

	rows := s.Rows()
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Path != "a_voc.txt" || !rows[0].Master || rows[0].Current {
		t.Errorf("rows[0] = %+v, want a_voc.txt as master, not current", rows[0])
	}
	if rows[1].Path != "b_voc.txt" || !rows[1].Qualified || !rows[1].Current {
		t.Errorf("rows[1] = %+v, want b_voc.txt qualified and current", rows[1])
	}
	if rows[1].Modifications != 2 {
		t.Errorf("rows[1].Modifications = %d, want 2", rows[1].Modifications)
	}
}
