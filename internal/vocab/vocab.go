// Package vocab loads vocabulary files and slices them into level blocks.
//
// A vocabulary file is a plain text file where each line holds three
// tab-separated fields: the native-language word, a comma-separated list
// of accepted translations, and the word to train on. Line order in the
// file defines the block order for the leveling system.
package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const (
	// BlockSize is the number of words trained per level.
	BlockSize = 10

	// MaxLevel is the terminal level. A vocabulary file needs
	// (MaxLevel+1)*BlockSize entries for every level to be reachable.
	MaxLevel = 10
)

// Entry is a single trainable word with its default translations.
type Entry struct {
	Word         string
	Translations []string
}

// Table is an ordered vocabulary, as read from one file.
type Table []Entry

// Load reads a vocabulary file into a Table.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	var table Table
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		table = append(table, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return table, nil
}

// parseLine splits "<native>\t<t1, t2, ...>\t<word>" into an Entry.
// The first field is kept in the file for human readers only.
func parseLine(line string) (Entry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return Entry{}, fmt.Errorf("expected 3 tab-separated fields, got %d", len(fields))
	}

	var translations []string
	for _, t := range strings.Split(fields[1], ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			translations = append(translations, t)
		}
	}

	word := strings.TrimSpace(fields[2])
	if word == "" {
		return Entry{}, fmt.Errorf("empty word field")
	}

	return Entry{Word: word, Translations: translations}, nil
}

// Block returns the contiguous slice of entries for the given level:
// [level*BlockSize, level*BlockSize+BlockSize). When the table is too
// short the block is simply shorter, possibly empty. Levels past the
// end of the table are valid and yield an empty block.
func (t Table) Block(level int) []Entry {
	start := level * BlockSize
	if start >= len(t) {
		return nil
	}
	end := start + BlockSize
	if end > len(t) {
		end = len(t)
	}
	return t[start:end]
}

// Levels returns how many levels the table can serve, counting a
// trailing partial block.
func (t Table) Levels() int {
	return (len(t) + BlockSize - 1) / BlockSize
}
