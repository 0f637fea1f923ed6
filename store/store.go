// Package store persists values under logical keys. The engines never touch
// storage directly; the caller loads a collection, applies a batch, and
// saves the result.
package store

// Store is the persistence contract. Implementations must treat a missing
// key as the zero value, not an error, so first runs need no setup.
type Store interface {
	// Load reads the value stored under key into v. A missing key leaves
	// v unchanged and returns nil.
	Load(key string, v any) error

	// Save writes the value stored under key.
	Save(key string, v any) error
}
