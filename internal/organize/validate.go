package organize

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks field declarations and their raw source entries for
// structural consistency and returns the vetted field list. It is pure:
// the sources map comes from ReadSources (or a test). Rules are checked
// in a fixed order, declaration order within each rule, so the reported
// violation is deterministic for identical input.
func Validate(specs []FieldSpec, sources map[string][]string) ([]FieldData, error) {
	if dupes := duplicateNames(specs); len(dupes) > 0 {
		return nil, fmt.Errorf("organize: %w: %s", ErrDuplicateFieldName, strings.Join(dupes, ", "))
	}

	players := 0
	var playerField string
	for _, spec := range specs {
		if spec.IsPlayer {
			players++
			playerField = spec.Name
		}
	}
	if players != 1 {
		return nil, fmt.Errorf("organize: %w (got %d)", ErrMissingPlayerField, players)
	}

	for _, spec := range specs {
		if _, ok := sources[spec.Name]; !ok {
			return nil, fmt.Errorf("organize: %w: %s", ErrMissingSourceFile, spec.Name)
		}
	}

	playerCount := len(sources[playerField])

	vetted := make([]FieldData, 0, len(specs))
	for _, spec := range specs {
		count := len(sources[spec.Name])
		if spec.IsPlayer && (spec.CanRepeat || spec.CanSkip) {
			return nil, fmt.Errorf("organize: %w: %s", ErrPlayerFieldMisconfigured, spec.Name)
		}
		if !spec.CanSkip && count > playerCount {
			return nil, fmt.Errorf("organize: field %s: %w: got %d, need %d",
				spec.Name, ErrFieldCountTooHigh, count, playerCount)
		}
		if !spec.CanRepeat && count < playerCount {
			return nil, fmt.Errorf("organize: field %s: %w: got %d, need %d",
				spec.Name, ErrFieldCountTooLow, count, playerCount)
		}
		entries := make([]string, count)
		copy(entries, sources[spec.Name])
		vetted = append(vetted, FieldData{Spec: spec, Entries: entries})
	}
	return vetted, nil
}

// ValidateAndLoad reads every field's source file under rootDir and runs
// Validate over the result.
func ValidateAndLoad(rootDir string, specs []FieldSpec) ([]FieldData, error) {
	sources, err := ReadSources(rootDir, specs)
	if err != nil {
		return nil, err
	}
	return Validate(specs, sources)
}

func duplicateNames(specs []FieldSpec) []string {
	seen := make(map[string]int, len(specs))
	for _, spec := range specs {
		seen[spec.Name]++
	}
	var dupes []string
	for name, count := range seen {
		if count > 1 {
			dupes = append(dupes, name)
		}
	}
	sort.Strings(dupes)
	return dupes
}
