// internal/organize/generate.go
//
// The assignment generator. All randomness flows through the *rand.Rand
// handed in by the caller; seeding one in a test makes every run
// reproducible. Production callers are expected to construct a fresh
// time-seeded source per organization run.

package organize

import (
	"fmt"
	"math/rand"
)

// assignment holds the generated columns before they are zipped into
// rows. Position i across every column describes the same participant.
type assignment struct {
	ids     []int
	players []string
	targets []string
	aux     [][]string
}

// Generate produces a randomized organization table from vetted fields.
// IDs are a permutation of 0..N-1, targets are the shuffled players
// rotated left by one (so nobody targets themselves and the target
// chain forms a single N-cycle), and each auxiliary field is sized to N
// per its can_repeat/can_skip policy, then shuffled independently.
func Generate(fields []FieldData, rng *rand.Rand) (Table, error) {
	asn, err := generate(fields, rng)
	if err != nil {
		return nil, err
	}
	return assemble(asn, len(fields)), nil
}

func generate(fields []FieldData, rng *rand.Rand) (assignment, error) {
	var playerEntries []string
	for _, field := range fields {
		if field.Spec.IsPlayer {
			playerEntries = field.Entries
		}
	}
	n := len(playerEntries)
	if n < 2 {
		return assignment{}, fmt.Errorf("organize: %w: got %d", ErrInsufficientParticipants, n)
	}

	ids := rng.Perm(n)

	players := make([]string, n)
	copy(players, playerEntries)
	rng.Shuffle(n, func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})

	// A left rotation of a shuffled list has no fixed points and exactly
	// one cycle, for any n >= 2.
	targets := make([]string, n)
	for i := range players {
		targets[i] = players[(i+1)%n]
	}

	var aux [][]string
	for _, field := range fields {
		if field.Spec.IsPlayer {
			continue
		}
		values, err := distribute(field, n, rng)
		if err != nil {
			return assignment{}, err
		}
		aux = append(aux, values)
	}

	return assignment{ids: ids, players: players, targets: targets, aux: aux}, nil
}

// distribute sizes one auxiliary field's entries to exactly n values and
// shuffles them. The sizing policy depends on the field's flags; the
// count checks in Validate guarantee the remaining cases line up.
func distribute(field FieldData, n int, rng *rand.Rand) ([]string, error) {
	entries := field.Entries
	var values []string

	switch {
	case field.Spec.CanRepeat && field.Spec.CanSkip:
		if len(entries) < n {
			return nil, fmt.Errorf("organize: field %s: %w: got %d, need %d",
				field.Spec.Name, ErrDistributionUnderflow, len(entries), n)
		}
		values = sampleWithoutReplacement(entries, n, rng)
	case len(entries) < n:
		// can_repeat: fill the shortfall by re-drawing from the
		// original entries, with replacement.
		values = make([]string, 0, n)
		values = append(values, entries...)
		for len(values) < n {
			values = append(values, entries[rng.Intn(len(entries))])
		}
	case len(entries) > n:
		// can_skip: keep a uniform subset.
		values = sampleWithoutReplacement(entries, n, rng)
	default:
		values = make([]string, n)
		copy(values, entries)
	}

	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values, nil
}

func sampleWithoutReplacement(entries []string, n int, rng *rand.Rand) []string {
	picked := rng.Perm(len(entries))[:n]
	values := make([]string, n)
	for i, idx := range picked {
		values[i] = entries[idx]
	}
	return values
}
