// internal/organize/types.go
//
// Core data model for an organization run. The engine is a pure
// pipeline: vetted field data goes in, a canonical table comes out.
// All file IO lives in the callers (and in sources.go for convenience).

package organize

// FieldSpec declares one field of the game configuration.
type FieldSpec struct {
	// Name identifies the field and names its source file (<Name>.txt).
	Name string

	// IsPlayer marks the single field whose entries are the participants.
	IsPlayer bool

	// CanRepeat allows the field to have fewer entries than participants;
	// the shortfall is filled by re-using existing entries.
	CanRepeat bool

	// CanSkip allows the field to have more entries than participants;
	// surplus entries are left unused.
	CanSkip bool
}

// FieldData pairs a field declaration with its vetted source entries.
type FieldData struct {
	Spec    FieldSpec
	Entries []string
}

// Row is one participant's complete assignment.
type Row struct {
	// ID is the pseudonymous serial number printed on the card.
	ID int

	// Player is the participant this row belongs to.
	Player string

	// Target is the participant this row secretly focuses on.
	// Never equals Player.
	Target string

	// Values holds one entry per non-player field, in declaration order.
	Values []string
}

// Table is a complete organization, ordered by ascending ID.
type Table []Row

// Width is the number of scalar cells per row: id, player and one value
// per remaining field (the target stands in for the player field).
func (t Table) Width() int {
	if len(t) == 0 {
		return 0
	}
	return 3 + len(t[0].Values)
}
