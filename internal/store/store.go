// Package store persists a single hnsw.Snapshot behind a small interface,
// mirroring the reference's IndexedDB contract (spec.md §6): one keyed
// save/load/delete, a not-ready error before the backing store is open, and
// a no-op (not an error) load when nothing has been saved yet.
package store

import "errors"

// ErrDatabaseNotReady is returned by every LevelDBStore operation when the
// store holds no open database, as with a zero-value LevelDBStore. After
// Close, LevelDBStore operations return LevelDB's own closed-database error
// instead. FileStore has no open step and never returns it.
var ErrDatabaseNotReady = errors.New("store: database not ready")

// storeName is the single fixed key LevelDBStore writes the snapshot under
// (FileStore writes its one file path instead) — the index has no notion of
// multiple named indexes.
const storeName = "hnsw-index"

// Store saves and loads a single JSON-encoded hnsw.Snapshot.
type Store interface {
	// SaveIndex persists data, overwriting any previously saved snapshot.
	SaveIndex(data []byte) error

	// LoadIndex returns the previously saved snapshot, or (nil, nil) if
	// nothing has been saved yet.
	LoadIndex() ([]byte, error)

	// DeleteIndex removes any previously saved snapshot. Deleting a
	// non-existent snapshot is not an error.
	DeleteIndex() error

	// Close releases any resources held by the store.
	Close() error
}
