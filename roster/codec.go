/*
codec.go - Serialization, share-link encoding, and view-mode flag

PURPOSE:
  The canonical state travels in three encodings:
    - raw JSON under the host's storage key
    - pretty-printed JSON for file export/import round-trips
    - base64 JSON in a share link's "data" query parameter
  Serialize/Deserialize are lossless and idempotent for canonical data.
  Share decode runs through Migrate because a link may carry any legacy
  generation.

VIEW MODE:
  Shared links can select a read-only presentation. That is a pure host
  concern, but the engine exposes the flag parse so hosts agree on the
  two accepted spellings: viewMode=true and view=dashboard.
*/
package roster

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// ShareParam is the query parameter carrying the base64 state.
const ShareParam = "data"

// =============================================================================
// CANONICAL JSON
// =============================================================================

// Serialize encodes the canonical state as compact JSON.
func Serialize(state *State) ([]byte, error) {
	return json.Marshal(state)
}

// Deserialize decodes canonical JSON. Round-tripping through
// Serialize/Deserialize is lossless: entry order and per-date record
// order are preserved.
func Deserialize(raw []byte) (*State, error) {
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	state.normalize()
	return &state, nil
}

// ExportJSON encodes the state as pretty-printed JSON for file download.
func ExportJSON(state *State) ([]byte, error) {
	return json.MarshalIndent(state, "", "  ")
}

// =============================================================================
// SHARE LINK ENCODING
// =============================================================================

// EncodeShare encodes the state for a share link's data parameter.
func EncodeShare(state *State) (string, error) {
	raw, err := Serialize(state)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeShare decodes a share link's data parameter. The payload runs
// through the migrator since links minted by older versions carry older
// generations.
func DecodeShare(encoded string) (*State, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return Migrate(raw)
}

// =============================================================================
// VIEW MODE FLAG
// =============================================================================

// ViewModeFromQuery reports whether a link requests read-only
// presentation. Two spellings are honored for compatibility:
// viewMode=true and view=dashboard.
func ViewModeFromQuery(viewMode, view string) bool {
	return viewMode == "true" || view == "dashboard"
}
