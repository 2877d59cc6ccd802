package vocab

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileSuffix marks files in the vocabulary directory as trainable.
const FileSuffix = "_voc.txt"

// File describes a discovered vocabulary file.
type File struct {
	Path  string
	Name  string
	Words int
}

// Discover lists vocabulary files in dir, sorted by name. Files that
// fail to parse are skipped; the picker should only offer usable files.
func Discover(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary dir: %w", err)
	}

	var files []File
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FileSuffix) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		table, err := Load(path)
		if err != nil {
			continue
		}
		files = append(files, File{
			Path:  path,
			Name:  e.Name(),
			Words: len(table),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
