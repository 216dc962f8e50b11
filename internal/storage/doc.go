// Package storage defines the persistence collaborator for astrokit.
//
// KeyValueStore is the settings-style store the app persists through.
// On top of it sit typed stores for saved profiles, the last entered birth
// details and the recent insight history. Values are serialized as JSON
// strings. Implementations of KeyValueStore (e.g., using SQLite) live in
// subpackages.
//
// # Error Types
//
//   - ErrNotFound: a requested record is missing or incomplete.
package storage
