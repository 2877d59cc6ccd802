// Package trainee holds the per-vocabulary progress state that survives
// between runs: the level, the exam qualification flag, and the user's
// corrections to the default translations.
package trainee

import (
	"sort"
	"strings"
)

// wordMod is one word's deviation from its default translations.
// Invariant: added and removed never share an element.
type wordMod struct {
	added   map[string]bool
	removed map[string]bool
}

func (m *wordMod) empty() bool {
	return len(m.added) == 0 && len(m.removed) == 0
}

// Corrections layers user-supplied additions and removals on top of a
// vocabulary's default translations. A word without an entry has no
// corrections; an entry whose sets are both empty behaves identically.
type Corrections struct {
	mods map[string]*wordMod
}

// NewCorrections returns an empty correction set.
func NewCorrections() *Corrections {
	return &Corrections{mods: make(map[string]*wordMod)}
}

// Apply merges add into the word's additions and remove into its
// removals. Each element always ends up in at most one of the two sets:
// adding strikes the element from removals and vice versa, so the
// disjointness invariant holds by construction.
func (c *Corrections) Apply(word string, add, remove []string) {
	mod := c.mods[word]
	if mod == nil {
		mod = &wordMod{added: make(map[string]bool), removed: make(map[string]bool)}
		c.mods[word] = mod
	}
	for _, a := range add {
		mod.added[a] = true
		delete(mod.removed, a)
	}
	for _, r := range remove {
		mod.removed[r] = true
		delete(mod.added, r)
	}
	// An entry that cancelled itself out is the same as no entry.
	if mod.empty() {
		delete(c.mods, word)
	}
}

// Clear drops every correction for the word, reverting it to its raw
// default translations. No-op for an uncorrected word.
func (c *Corrections) Clear(word string) {
	delete(c.mods, word)
}

// Effective returns the accepted translations for a word: the defaults
// plus additions, minus removals, deduplicated and sorted. Neither the
// defaults nor the correction set is mutated.
func (c *Corrections) Effective(word string, defaults []string) []string {
	set := make(map[string]bool, len(defaults))
	for _, d := range defaults {
		set[d] = true
	}
	if mod := c.mods[word]; mod != nil {
		for a := range mod.added {
			set[a] = true
		}
		for r := range mod.removed {
			delete(set, r)
		}
	}

	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

// Matches reports whether answer, lower-cased and trimmed, is an
// accepted translation for the word.
func (c *Corrections) Matches(word, answer string, defaults []string) bool {
	normalized := Normalize(answer)
	for _, t := range c.Effective(word, defaults) {
		if t == normalized {
			return true
		}
	}
	return false
}

// ModificationCount returns the total number of added plus removed
// translations across all words.
func (c *Corrections) ModificationCount() int {
	n := 0
	for _, mod := range c.mods {
		n += len(mod.added) + len(mod.removed)
	}
	return n
}

// ModifiedWords lists the words carrying corrections, sorted.
func (c *Corrections) ModifiedWords() []string {
	words := make([]string, 0, len(c.mods))
	for w := range c.mods {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Added returns the word's addition set, sorted. Nil for an
// uncorrected word.
func (c *Corrections) Added(word string) []string {
	if mod := c.mods[word]; mod != nil {
		return sortedKeys(mod.added)
	}
	return nil
}

// Removed returns the word's removal set, sorted. Nil for an
// uncorrected word.
func (c *Corrections) Removed(word string) []string {
	if mod := c.mods[word]; mod != nil {
		return sortedKeys(mod.removed)
	}
	return nil
}

// Restore installs a word's sets directly, used when loading persisted
// state. Overlapping elements resolve in favor of removal, matching
// Apply called with the same arguments.
func (c *Corrections) Restore(word string, added, removed []string) {
	c.Clear(word)
	c.Apply(word, added, nil)
	c.Apply(word, nil, removed)
}

// Normalize lower-cases and trims an answer before comparison.
func Normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
