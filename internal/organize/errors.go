package organize

import "errors"

// Sentinel errors for every way an organization run can be refused.
// All of them fire before any randomness is consumed, except
// ErrInsufficientParticipants and ErrDistributionUnderflow which the
// generator raises before touching the entropy source for the affected
// field. Callers match with errors.Is; the wrapped message names the
// offending field and counts.
var (
	// ErrDuplicateFieldName reports two field declarations sharing a name.
	ErrDuplicateFieldName = errors.New("duplicate field names")

	// ErrMissingPlayerField reports zero or more than one is_player field.
	ErrMissingPlayerField = errors.New("exactly one field must have is_player set")

	// ErrPlayerFieldMisconfigured reports a player field marked
	// can_repeat or can_skip.
	ErrPlayerFieldMisconfigured = errors.New("player field must not be marked can_repeat or can_skip")

	// ErrMissingSourceFile reports a declared field with no source data.
	ErrMissingSourceFile = errors.New("field source data not found")

	// ErrFieldCountTooHigh reports surplus entries on a field without can_skip.
	ErrFieldCountTooHigh = errors.New("field has too many entries")

	// ErrFieldCountTooLow reports missing entries on a field without can_repeat.
	ErrFieldCountTooLow = errors.New("field has too few entries")

	// ErrInsufficientParticipants reports a player list too short to
	// build a derangement from.
	ErrInsufficientParticipants = errors.New("at least two players are required")

	// ErrDistributionUnderflow reports a can_repeat+can_skip field whose
	// source is shorter than the participant count. Sampling such a field
	// without replacement is unsatisfiable; we refuse instead of silently
	// falling back to resampling.
	ErrDistributionUnderflow = errors.New("not enough entries to draw from")
)
