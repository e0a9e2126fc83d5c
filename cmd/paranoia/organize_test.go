package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/paranoia/internal/orgafile"
)

func setupGameDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"paranoia.yml": "fields:\n  - name: name\n    is_player: true\n  - name: mission\n",
		"name.txt":     "Alice\nBob\nCara\n",
		"mission.txt":  "watch the docks\nshadow the courier\nguard the safehouse\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDoOrganizeCreatesArtifact(t *testing.T) {
	dir := setupGameDir(t)
	if err := doOrganize(dir, false, false); err != nil {
		t.Fatalf("doOrganize returned error: %v", err)
	}
	if !orgafile.Exists(dir) {
		t.Fatalf("no organization artifact written")
	}
	table, err := orgafile.Load(dir)
	if err != nil {
		t.Fatalf("load artifact: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("len(table) = %d, want 3", len(table))
	}
}

func TestDoOrganizeRefusesOverwriteWithoutForce(t *testing.T) {
	dir := setupGameDir(t)
	if err := doOrganize(dir, false, false); err != nil {
		t.Fatalf("first run: %v", err)
	}
	err := doOrganize(dir, false, false)
	if err == nil || !strings.Contains(err.Error(), "already organized") {
		t.Fatalf("err = %v, want already-organized refusal", err)
	}
	if err := doOrganize(dir, true, false); err != nil {
		t.Fatalf("forced rerun: %v", err)
	}
}

func TestDoOrganizeFailsWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	err := doOrganize(dir, false, false)
	if err == nil || !strings.Contains(err.Error(), "configuration file not found") {
		t.Fatalf("err = %v, want missing-config error", err)
	}
	if orgafile.Exists(dir) {
		t.Fatalf("failed run must not leave an artifact")
	}
}

func TestDoOrganizeValidationFailureWritesNothing(t *testing.T) {
	dir := setupGameDir(t)
	// Drop the mission source to trip validation.
	if err := os.Remove(filepath.Join(dir, "mission.txt")); err != nil {
		t.Fatal(err)
	}
	if err := doOrganize(dir, false, false); err == nil {
		t.Fatalf("expected validation error")
	}
	if orgafile.Exists(dir) {
		t.Fatalf("failed run must not leave an artifact")
	}
}

func TestParseOnly(t *testing.T) {
	only, err := parseOnly(" 1, 3 ,5")
	if err != nil {
		t.Fatalf("parseOnly returned error: %v", err)
	}
	if len(only) != 3 || !only[1] || !only[3] || !only[5] {
		t.Fatalf("only = %v", only)
	}
	if got, err := parseOnly("  "); err != nil || got != nil {
		t.Fatalf("blank --only should mean all, got %v, %v", got, err)
	}
	if _, err := parseOnly("1,two"); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
}
