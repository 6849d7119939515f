package store

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
)

// indexKey is the single fixed key every snapshot is written under.
var indexKey = []byte(storeName)

// LevelDBStore persists a snapshot as a single value in a LevelDB database,
// grounded on benbenbenbenbenben-levelgraph's KVStore/openLevelDB split.
type LevelDBStore struct {
	db *leveldb.DB
}

// OpenLevelDBStore opens (creating if necessary) a LevelDB database at path.
func OpenLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &LevelDBStore{db: db}, nil
}

func (s *LevelDBStore) SaveIndex(data []byte) error {
	if s.db == nil {
		return ErrDatabaseNotReady
	}
	return s.db.Put(indexKey, data, nil)
}

func (s *LevelDBStore) LoadIndex() ([]byte, error) {
	if s.db == nil {
		return nil, ErrDatabaseNotReady
	}
	data, err := s.db.Get(indexKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *LevelDBStore) DeleteIndex() error {
	if s.db == nil {
		return ErrDatabaseNotReady
	}
	if err := s.db.Delete(indexKey, nil); err != nil && !errors.Is(err, leveldb.ErrNotFound) {
		return err
	}
	return nil
}

func (s *LevelDBStore) Close() error {
	if s.db == nil {
		return ErrDatabaseNotReady
	}
	return s.db.Close()
}
