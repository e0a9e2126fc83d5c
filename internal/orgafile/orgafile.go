// internal/orgafile/orgafile.go
//
// Persistence codec for the organization artifact. The on-disk format
// is base64 over a JSON array of rows, each row the heterogeneous array
// [id, player, target, values...]. The base64 wrapper keeps the secrets
// out of casual view (it is transport armor, not encryption) and the
// JSON layer is lossless for any string content.

package orgafile

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kingrea/paranoia/internal/organize"
)

// FileName is the artifact's conventional name under the game root.
// Its presence signals that the game has already been organized.
const FileName = ".organization"

// ErrCorruptFile reports an artifact that cannot be decoded back into a
// well-formed table. Decoding never returns a partial table.
var ErrCorruptFile = errors.New("corrupt organization file")

// Path returns the artifact location for a game root.
func Path(rootDir string) string {
	return filepath.Join(rootDir, FileName)
}

// Exists reports whether a game root already holds an organization.
func Exists(rootDir string) bool {
	_, err := os.Stat(Path(rootDir))
	return err == nil
}

// Encode serializes a table to its transport form.
func Encode(table organize.Table) ([]byte, error) {
	rows := make([][]any, len(table))
	for i, row := range table {
		cells := make([]any, 0, 3+len(row.Values))
		cells = append(cells, row.ID, row.Player, row.Target)
		for _, value := range row.Values {
			cells = append(cells, value)
		}
		rows[i] = cells
	}
	serialized, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("orgafile: encode table: %w", err)
	}
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(serialized)))
	base64.StdEncoding.Encode(encoded, serialized)
	return encoded, nil
}

// Decode is the exact inverse of Encode. Any shape defect (bad base64,
// malformed JSON, short or ragged rows, non-integer ids, ids not
// forming a permutation of 0..N-1) fails with ErrCorruptFile.
func Decode(data []byte) (organize.Table, error) {
	serialized, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("orgafile: %w: %v", ErrCorruptFile, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(serialized))
	decoder.UseNumber()
	var rows [][]any
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("orgafile: %w: %v", ErrCorruptFile, err)
	}

	table := make(organize.Table, len(rows))
	for i, cells := range rows {
		row, err := decodeRow(cells)
		if err != nil {
			return nil, fmt.Errorf("orgafile: %w: row %d: %v", ErrCorruptFile, i, err)
		}
		if i > 0 && len(row.Values) != len(table[0].Values) {
			return nil, fmt.Errorf("orgafile: %w: row %d has width %d, want %d",
				ErrCorruptFile, i, 3+len(row.Values), 3+len(table[0].Values))
		}
		table[i] = row
	}

	if err := checkIDs(table); err != nil {
		return nil, fmt.Errorf("orgafile: %w: %v", ErrCorruptFile, err)
	}
	return table, nil
}

// Save encodes the table and writes the artifact in one shot; a failed
// encode leaves the path untouched.
func Save(rootDir string, table organize.Table) error {
	encoded, err := Encode(table)
	if err != nil {
		return err
	}
	path := Path(rootDir)
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("orgafile: write %s: %w", path, err)
	}
	return nil
}

// Load reads and decodes the artifact for a game root.
func Load(rootDir string) (organize.Table, error) {
	path := Path(rootDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("orgafile: read %s: %w", path, err)
	}
	return Decode(data)
}

func decodeRow(cells []any) (organize.Row, error) {
	if len(cells) < 3 {
		return organize.Row{}, fmt.Errorf("want at least 3 cells, got %d", len(cells))
	}
	number, ok := cells[0].(json.Number)
	if !ok {
		return organize.Row{}, fmt.Errorf("id is not a number")
	}
	id, err := number.Int64()
	if err != nil {
		return organize.Row{}, fmt.Errorf("id %s is not an integer", number)
	}
	strs := make([]string, 0, len(cells)-1)
	for _, cell := range cells[1:] {
		s, ok := cell.(string)
		if !ok {
			return organize.Row{}, fmt.Errorf("non-string cell %v", cell)
		}
		strs = append(strs, s)
	}
	return organize.Row{
		ID:     int(id),
		Player: strs[0],
		Target: strs[1],
		Values: strs[2:],
	}, nil
}

func checkIDs(table organize.Table) error {
	seen := make(map[int]bool, len(table))
	for _, row := range table {
		if row.ID < 0 || row.ID >= len(table) {
			return fmt.Errorf("id %d out of range 0..%d", row.ID, len(table)-1)
		}
		if seen[row.ID] {
			return fmt.Errorf("id %d appears twice", row.ID)
		}
		seen[row.ID] = true
	}
	return nil
}
