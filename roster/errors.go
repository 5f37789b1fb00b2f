/*
errors.go - Centralized error values for the roster engine

PURPOSE:
  Everything that can go wrong in the engine in one place. Nothing here
  is fatal: malformed input falls back to prior or default state, empty
  patterns resolve to a sentinel value, and unknown-id edits are silent
  no-ops. Errors surface only where the host must show a notice.

SEE ALSO:
  - codec.go: Wraps decode failures in ErrMalformedInput
  - timeline.go: SetPattern returns ErrPastEffectiveDate
*/
package roster

import "errors"

var (
	// ErrMalformedInput is returned when persisted or imported data
	// cannot be decoded. The host recovers by keeping its prior state
	// and showing a non-fatal notice.
	ErrMalformedInput = errors.New("malformed schedule data")

	// ErrPastEffectiveDate is returned by SetPattern for manual schedule
	// changes backdated before today. This is caller-side policy; the
	// timeline itself accepts any date via AppendPattern.
	ErrPastEffectiveDate = errors.New("effective date is in the past")
)
