package trainee

import (
	"reflect"
	"testing"
)

func TestEffective_Defaults(t *testing.T) {
	c := NewCorrections()

	got := c.Effective("dog", []string{"hund", "hund", "vovve"})
	want := []string{"hund", "vovve"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Effective = %v, want %v (deduplicated defaults)", got, want)
	}
}

func TestEffective_AddAndRemove(t *testing.T) {
	c := NewCorrections()
	c.Apply("dog", []string{"doggo"}, nil)
	c.Apply("dog", nil, []string{"hund"})

	got := c.Effective("dog", []string{"hund", "vovve"})
	want := []string{"doggo", "vovve"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Effective = %v, want %v", got, want)
	}
}

func TestEffective_DoesNotMutateDefaults(t *testing.T) {
	c := NewCorrections()
	c.Apply("dog", nil, []string{"hund"})

	defaults := []string{"hund", "vovve"}
	c.Effective("dog", defaults)

	if !reflect.DeepEqual(defaults, []string{"hund", "vovve"}) {
		t.Errorf("defaults mutated: %v", defaults)
	}
}

func TestApply_Disjointness(t *testing.T) {
	c := NewCorrections()

	// A removed word that is later added must leave the removal set.
	c.Apply("dog", nil, []string{"hund"})
	c.Apply("dog", []string{"hund"}, nil)

	if got := c.Removed("dog"); len(got) != 0 {
		t.Errorf("Removed = %v, want empty after re-adding", got)
	}
	if got := c.Added("dog"); !reflect.DeepEqual(got, []string{"hund"}) {
		t.Errorf("Added = %v, want [hund]", got)
	}

	// And the other direction.
	c.Apply("dog", nil, []string{"hund"})
	if got := c.Added("dog"); len(got) != 0 {
		t.Errorf("Added = %v, want empty after removing again", got)
	}
}

func TestApply_Idempotent(t *testing.T) {
	c := NewCorrections()
	c.Apply("dog", []string{"doggo"}, []string{"hund"})
	c.Apply("dog", []string{"doggo"}, []string{"hund"})

	if got := c.Added("dog"); !reflect.DeepEqual(got, []string{"doggo"}) {
		t.Errorf("Added = %v, want [doggo]", got)
	}
	if got := c.Removed("dog"); !reflect.DeepEqual(got, []string{"hund"}) {
		t.Errorf("Removed = %v, want [hund]", got)
	}
	if got := c.ModificationCount(); got != 2 {
		t.Errorf("ModificationCount = %d, want 2", got)
	}
}

func TestApply_SelfCancellingEntryIsAbsent(t *testing.T) {
	c := NewCorrections()
	c.Apply("dog", []string{"doggo"}, nil)
	c.Apply("dog", nil, []string{"doggo"})
	c.Apply("dog", []string{"doggo"}, nil)
	c.Clear("dog")

	if got := c.ModificationCount(); got != 0 {
		t.Errorf("ModificationCount = %d, want 0", got)
	}
	if got := c.ModifiedWords(); len(got) != 0 {
		t.Errorf("ModifiedWords = %v, want none", got)
	}
}

func TestClear(t *testing.T) {
	c := NewCorrections()
	c.Apply("dog", []string{"doggo"}, []string{"hund"})
	c.Clear("dog")

	got := c.Effective("dog", []string{"hund", "vovve"})
	want := []string{"hund", "vovve"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Effective after Clear = %v, want raw defaults %v", got, want)
	}

	// Clearing an unknown word is a no-op.
	c.Clear("cat")
}

func TestMatches(t *testing.T) {
	c := NewCorrections()
	c.Apply("dog", []string{"doggo"}, []string{"hund"})

	tests := []struct {
		answer string
		want   bool
	}{
		{"vovve", true},
		{" Vovve ", true}, // normalized before comparison
		{"doggo", true},
		{"hund", false}, // removed
		{"katt", false},
	}
	for _, tt := range tests {
		if got := c.Matches("dog", tt.answer, []string{"hund", "vovve"}); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestRestore(t *testing.T) {
	c := NewCorrections()
	c.Restore("dog", []string{"doggo"}, []string{"hund"})

	if got := c.Added("dog"); !reflect.DeepEqual(got, []string{"doggo"}) {
		t.Errorf("Added = %v, want [doggo]", got)
	}
	if got := c.Removed("dog"); !reflect.DeepEqual(got, []string{"hund"}) {
		t.Errorf("Removed = %v, want [hund]", got)
	}

	// Overlap resolves in favor of removal, same as sequential Apply.
	c.Restore("cat", []string{"kitty"}, []string{"kitty"})
	if got := c.Added("cat"); len(got) != 0 {
		t.Errorf("Added = %v, want empty on overlap", got)
	}
	if got := c.Removed("cat"); !reflect.DeepEqual(got, []string{"kitty"}) {
		t.Errorf("Removed = %v, want [kitty]", got)
	}
}
