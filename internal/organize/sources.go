package organize

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// sourceExt is the extension of per-field data files under the game root.
const sourceExt = ".txt"

// SourcePath returns the conventional data file location for a field.
func SourcePath(rootDir, fieldName string) string {
	return filepath.Join(rootDir, fieldName+sourceExt)
}

// ReadSources reads one data file per declared field. Lines are trimmed
// and blank lines dropped, so entry counts reflect real values only.
func ReadSources(rootDir string, specs []FieldSpec) (map[string][]string, error) {
	sources := make(map[string][]string, len(specs))
	for _, spec := range specs {
		path := SourcePath(rootDir, spec.Name)
		entries, err := readEntries(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("organize: %w: %s (%s)", ErrMissingSourceFile, spec.Name, path)
			}
			return nil, fmt.Errorf("organize: read %s: %w", path, err)
		}
		sources[spec.Name] = entries
	}
	return sources, nil
}

func readEntries(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
