package orgafile

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kingrea/paranoia/internal/organize"
)

func sampleTable() organize.Table {
	return organize.Table{
		{ID: 0, Player: "Alice", Target: "Bob", Values: []string{"watch the docks", "fox"}},
		{ID: 1, Player: "Bob", Target: "Cara", Values: []string{"shadow \"the courier\"", "owl"}},
		{ID: 2, Player: "Cara", Target: "Alice", Values: []string{"guard, protect & stall", "räv"}},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	table := sampleTable()
	encoded, err := Encode(table)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !reflect.DeepEqual(decoded, table) {
		t.Fatalf("round trip changed the table:\n got %+v\nwant %+v", decoded, table)
	}
}

func TestEncodedArtifactIsBase64(t *testing.T) {
	encoded, err := Encode(sampleTable())
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if _, err := base64.StdEncoding.DecodeString(string(encoded)); err != nil {
		t.Fatalf("artifact is not plain base64: %v", err)
	}
}

func TestDecodeRejectsCorruptInput(t *testing.T) {
	cases := map[string]string{
		"not base64":      "!!!not-base64!!!",
		"not json":        base64.StdEncoding.EncodeToString([]byte("not json")),
		"not an array":    base64.StdEncoding.EncodeToString([]byte(`{"rows": []}`)),
		"short row":       base64.StdEncoding.EncodeToString([]byte(`[[0,"Alice"]]`)),
		"non-integer id":  base64.StdEncoding.EncodeToString([]byte(`[[0.5,"Alice","Bob"]]`)),
		"string id":       base64.StdEncoding.EncodeToString([]byte(`[["0","Alice","Bob"]]`)),
		"non-string cell": base64.StdEncoding.EncodeToString([]byte(`[[0,"Alice",7]]`)),
		"ragged widths":   base64.StdEncoding.EncodeToString([]byte(`[[0,"Alice","Bob","x"],[1,"Bob","Alice"]]`)),
		"duplicate ids":   base64.StdEncoding.EncodeToString([]byte(`[[0,"Alice","Bob"],[0,"Bob","Alice"]]`)),
		"id out of range": base64.StdEncoding.EncodeToString([]byte(`[[0,"Alice","Bob"],[5,"Bob","Alice"]]`)),
		"negative id":     base64.StdEncoding.EncodeToString([]byte(`[[-1,"Alice","Bob"],[0,"Bob","Alice"]]`)),
	}
	for name, input := range cases {
		if _, err := Decode([]byte(input)); !errors.Is(err, ErrCorruptFile) {
			t.Fatalf("%s: err = %v, want ErrCorruptFile", name, err)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	table := sampleTable()

	if Exists(dir) {
		t.Fatalf("Exists reported an artifact before Save")
	}
	if err := Save(dir, table); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !Exists(dir) {
		t.Fatalf("Exists did not see the saved artifact")
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(loaded, table) {
		t.Fatalf("Load changed the table:\n got %+v\nwant %+v", loaded, table)
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for missing artifact")
	}
}

func TestLoadCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); !errors.Is(err, ErrCorruptFile) {
		t.Fatalf("err = %v, want ErrCorruptFile", err)
	}
}
