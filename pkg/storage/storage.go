// Package storage provides the client's durable local key-value store.
//
// It plays the role browser localStorage plays for a web front-end: a small,
// synchronous store the session layer mirrors itself into. Implementations
// include the default SQLite store and an in-memory store for tests.
package storage

// KeyValue is the persistence interface the session store writes through.
// All operations are synchronous and never touch the network.
type KeyValue interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool)
	// Set stores or replaces a value.
	Set(key, value string) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}

// Compile-time checks: both implementations satisfy KeyValue.
var _ KeyValue = (*Store)(nil)
var _ KeyValue = (*MemoryStore)(nil)
