/*
store.go - Keyed schedule persistence interface

PURPOSE:
  The engine promises no durability beyond "whatever the host's
  key-value store provides". Store is that key-value surface: one
  canonical state blob per key. Implementations:
    - roster/store:  in-memory, for tests and dev
    - store/sqlite:  SQLite-backed, for the server

  Loading a missing key returns (nil, nil) - absence is not an error;
  hosts start from an empty state.
*/
package roster

import "context"

// Store persists canonical schedule states by key.
type Store interface {
	// Load returns the state stored under key, or (nil, nil) when the
	// key is absent.
	Load(ctx context.Context, key string) (*State, error)

	// Save writes the state under key, replacing any previous value.
	Save(ctx context.Context, key string, state *State) error

	// Exists reports whether a state is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
}
