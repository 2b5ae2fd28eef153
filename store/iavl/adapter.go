package iavl

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of tree nodes kept in memory.
const DefaultCacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	db   dbm.DB
	tree *iavl.MutableTree
}

var _ bazaar.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with a leveldb backing, stored in
// <dir>/<name>.db
func NewCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %s in %s: %s", name, dir, err)
	}
	return newCommitStore(db), nil
}

// NewMemCommitStore creates a store that never touches the disk.
func NewMemCommitStore() *CommitStore {
	return newCommitStore(dbm.NewMemDB())
}

func newCommitStore(db dbm.DB) *CommitStore {
	return &CommitStore{
		db:   db,
		tree: iavl.NewMutableTree(db, DefaultCacheSize),
	}
}

// Close releases the underlying database.
func (s *CommitStore) Close() {
	s.db.Close()
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist. Panics on nil key.
func (s *CommitStore) Get(key []byte) []byte {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val
}

// Commit the next version to disk, and returns info
func (s *CommitStore) Commit() bazaar.CommitID {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		panic(err)
	}
	return bazaar.CommitID{
		Version: version,
		Hash:    hash,
	}
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "load tree: %s", err)
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s *CommitStore) LatestVersion() bazaar.CommitID {
	return bazaar.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}

// CacheWrap gives us a savepoint to perform actions. All pending writes are
// kept in memory until Write applies them to the working tree. Commit then
// persists the working tree as a new version.
func (s *CommitStore) CacheWrap() bazaar.KVCacheWrap {
	return store.NewBTreeCacheWrap(adapter{tree: s.tree}, nil)
}

// adapter exposes the working state of the tree as a KVStore.
type adapter struct {
	tree *iavl.MutableTree
}

var _ bazaar.KVStore = adapter{}

func (a adapter) Get(key []byte) []byte {
	_, val := a.tree.Get(key)
	return val
}

func (a adapter) Has(key []byte) bool {
	return a.tree.Has(key)
}

func (a adapter) Set(key, value []byte) {
	a.tree.Set(key, value)
}

func (a adapter) Delete(key []byte) {
	a.tree.Remove(key)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (a adapter) Iterator(start, end []byte) bazaar.Iterator {
	return store.NewSliceIterator(a.collect(start, end, true))
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (a adapter) ReverseIterator(start, end []byte) bazaar.Iterator {
	return store.NewSliceIterator(a.collect(start, end, false))
}

func (a adapter) collect(start, end []byte, ascending bool) []bazaar.Model {
	var res []bazaar.Model
	a.tree.IterateRange(start, end, ascending, func(key []byte, value []byte) bool {
		res = append(res, bazaar.Pair(key, value))
		return false
	})
	return res
}
