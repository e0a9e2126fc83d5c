package organize

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, dir, field, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, field+".txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestThreePlayerScenario(t *testing.T) {
	specs := []FieldSpec{
		{Name: "name", IsPlayer: true},
		{Name: "mission"},
	}
	sources := map[string][]string{
		"name":    {"Alice", "Bob", "Cara"},
		"mission": {"observe", "distract", "protect"},
	}
	vetted, err := Validate(specs, sources)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	table, err := Generate(vetted, seededRand(99))
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if len(table) != 3 {
		t.Fatalf("len(table) = %d, want 3", len(table))
	}
	targets := map[string]int{}
	missions := map[string]bool{"observe": true, "distract": true, "protect": true}
	for i, row := range table {
		if row.ID != i {
			t.Fatalf("ids are not 0..2 in order: %+v", table)
		}
		if row.Target == row.Player {
			t.Fatalf("%s targets themselves", row.Player)
		}
		targets[row.Target]++
		if len(row.Values) != 1 || !missions[row.Values[0]] {
			t.Fatalf("row %d mission %v not drawn from the supplied three", i, row.Values)
		}
	}
	for _, name := range []string{"Alice", "Bob", "Cara"} {
		if targets[name] != 1 {
			t.Fatalf("target multiset wrong: %v", targets)
		}
	}
}

func TestValidateAndLoadReadsTrimmedSources(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "name", "  Alice  \n\nBob\n   \nCara\n")
	writeSource(t, dir, "mission", "watch the docks\n\tshadow the courier\t\nguard the safehouse\n")

	specs := []FieldSpec{
		{Name: "name", IsPlayer: true},
		{Name: "mission"},
	}
	vetted, err := ValidateAndLoad(dir, specs)
	if err != nil {
		t.Fatalf("ValidateAndLoad returned error: %v", err)
	}
	if got := vetted[0].Entries; len(got) != 3 || got[0] != "Alice" {
		t.Fatalf("player entries not trimmed/filtered: %q", got)
	}
	if got := vetted[1].Entries[1]; got != "shadow the courier" {
		t.Fatalf("mission entry not trimmed: %q", got)
	}
}

func TestValidateAndLoadMissingSourceFile(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "name", "Alice\nBob\n")

	specs := []FieldSpec{
		{Name: "name", IsPlayer: true},
		{Name: "mission"},
	}
	_, err := ValidateAndLoad(dir, specs)
	if !errors.Is(err, ErrMissingSourceFile) {
		t.Fatalf("err = %v, want ErrMissingSourceFile", err)
	}
}
