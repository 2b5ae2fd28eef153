package orm

import (
	"bytes"
	"regexp"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

var isIndexName = regexp.MustCompile(`^[a-z_]+$`).MatchString

// Indexer calculates the secondary index key for a given object
type Indexer func(Object) ([]byte, error)

// MultiKeyIndexer calculates the secondary index keys for a given object
type MultiKeyIndexer func(Object) ([][]byte, error)

// asMultiKeyIndexer converts a single key indexer into the multi key form.
// A nil key means the object is not indexed.
func asMultiKeyIndexer(indexer Indexer) MultiKeyIndexer {
	return func(obj Object) ([][]byte, error) {
		key, err := indexer(obj)
		if err != nil || key == nil {
			return nil, err
		}
		return [][]byte{key}, nil
	}
}

// Index represents a secondary index on some data.
// It is calculated from the main data field of an object.
//
// An index is either unique, mapping every index key to exactly one
// primary key, or not, storing a MultiRef of primary keys per index key.
type Index struct {
	name   string
	id     []byte
	unique bool
	index  MultiKeyIndexer
	refKey func([]byte) []byte
}

// NewIndex constructs an index
// Indexer calculates the index for an object
// unique enforces a unique constraint on the index
// refKey calculates the absolute dbkey for a ref
func NewIndex(name string, indexer Indexer, unique bool, refKey func([]byte) []byte) Index {
	return NewMultiKeyIndex(name, asMultiKeyIndexer(indexer), unique, refKey)
}

// NewMultiKeyIndex constructs an index that may produce any number of keys
// for every object.
func NewMultiKeyIndex(name string, indexer MultiKeyIndexer, unique bool, refKey func([]byte) []byte) Index {
	if !isIndexName(name) {
		panic(errors.Wrapf(errors.ErrInput, "illegal index name: %q", name))
	}
	return Index{
		name:   name,
		id:     []byte("_i." + name + ":"),
		index:  indexer,
		unique: unique,
		refKey: refKey,
	}
}

// Name returns the name of this index.
func (i Index) Name() string {
	return i.name
}

// IndexKey returns the full key used in the database for the index value.
func (i Index) IndexKey(key []byte) []byte {
	return append(append([]byte(nil), i.id...), key...)
}

// Update handles updating the reference to the object in
// the secondary index.
//
// prev == nil means insert
// save == nil means delete
// both == nil is error
// if both != nil and prev.Key() != save.Key() this is an error
//
// Otherwise, it will check indexer(prev) and indexer(save)
// and make sure the key is now stored in the right location
func (i Index) Update(db bazaar.KVStore, prev Object, save Object) error {
	switch {
	case prev == nil && save == nil:
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	case prev == nil:
		return i.insert(db, save)
	case save == nil:
		return i.remove(db, prev)
	}

	if !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrap(errors.ErrImmutable, "primary key must not change")
	}
	oldKeys, err := i.index(prev)
	if err != nil {
		return errors.Wrap(err, "cannot index previous object")
	}
	newKeys, err := i.index(save)
	if err != nil {
		return errors.Wrap(err, "cannot index new object")
	}
	pk := save.Key()
	for _, k := range oldKeys {
		if !containsKey(newKeys, k) {
			if err := i.unlink(db, k, pk); err != nil {
				return err
			}
		}
	}
	for _, k := range newKeys {
		if !containsKey(oldKeys, k) {
			if err := i.link(db, k, pk); err != nil {
				return err
			}
		}
	}
	return nil
}

func containsKey(keys [][]byte, key []byte) bool {
	for _, k := range keys {
		if bytes.Equal(k, key) {
			return true
		}
	}
	return false
}

func (i Index) insert(db bazaar.KVStore, obj Object) error {
	keys, err := i.index(obj)
	if err != nil {
		return errors.Wrap(err, "cannot index object")
	}
	for _, k := range keys {
		if err := i.link(db, k, obj.Key()); err != nil {
			return err
		}
	}
	return nil
}

func (i Index) remove(db bazaar.KVStore, obj Object) error {
	keys, err := i.index(obj)
	if err != nil {
		return errors.Wrap(err, "cannot index object")
	}
	for _, k := range keys {
		if err := i.unlink(db, k, obj.Key()); err != nil {
			return err
		}
	}
	return nil
}

// link adds the primary key to the set stored under the index key.
func (i Index) link(db bazaar.KVStore, key, pk []byte) error {
	dbkey := i.IndexKey(key)
	raw := db.Get(dbkey)
	if i.unique {
		if raw != nil {
			return errors.Wrapf(errors.ErrDuplicate, "unique index %s: %X already taken", i.name, key)
		}
		db.Set(dbkey, pk)
		return nil
	}

	refs, err := parseRefs(raw)
	if err != nil {
		return err
	}
	if err := refs.Add(pk); err != nil {
		return errors.Wrapf(err, "index %s", i.name)
	}
	return storeRefs(db, dbkey, refs)
}

// unlink removes the primary key from the set stored under the index key.
func (i Index) unlink(db bazaar.KVStore, key, pk []byte) error {
	dbkey := i.IndexKey(key)
	raw := db.Get(dbkey)
	if i.unique {
		if !bytes.Equal(raw, pk) {
			return errors.Wrapf(errors.ErrNotFound, "unique index %s: %X not linked", i.name, key)
		}
		db.Delete(dbkey)
		return nil
	}

	refs, err := parseRefs(raw)
	if err != nil {
		return err
	}
	if err := refs.Remove(pk); err != nil {
		return errors.Wrapf(err, "index %s", i.name)
	}
	if len(refs.Refs) == 0 {
		db.Delete(dbkey)
		return nil
	}
	return storeRefs(db, dbkey, refs)
}

func parseRefs(raw []byte) (*MultiRef, error) {
	var refs MultiRef
	if raw == nil {
		return &refs, nil
	}
	if err := refs.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "cannot parse index value")
	}
	return &refs, nil
}

func storeRefs(db bazaar.KVStore, dbkey []byte, refs *MultiRef) error {
	raw, err := refs.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal index value")
	}
	db.Set(dbkey, raw)
	return nil
}

// GetAt returns a list of all primary keys that are
// stored at the given index key.
func (i Index) GetAt(db bazaar.ReadOnlyKVStore, key []byte) ([][]byte, error) {
	raw := db.Get(i.IndexKey(key))
	if raw == nil {
		return nil, nil
	}
	if i.unique {
		return [][]byte{raw}, nil
	}
	refs, err := parseRefs(raw)
	if err != nil {
		return nil, err
	}
	return refs.Refs, nil
}

// GetPrefix returns all primary keys that are stored under an index key
// starting with the given prefix.
func (i Index) GetPrefix(db bazaar.ReadOnlyKVStore, prefix []byte) ([][]byte, error) {
	var pks [][]byte
	for _, m := range queryPrefix(db, i.IndexKey(prefix)) {
		if i.unique {
			pks = append(pks, m.Value)
			continue
		}
		refs, err := parseRefs(m.Value)
		if err != nil {
			return nil, err
		}
		pks = append(pks, refs.Refs...)
	}
	return pks, nil
}

// Query handles queries against the index. With the key modifier data is
// the exact index key, with the prefix modifier every index key starting
// with data matches. Returned models are the indexed objects.
func (i Index) Query(db bazaar.ReadOnlyKVStore, mod string, data []byte) ([]bazaar.Model, error) {
	var (
		pks [][]byte
		err error
	)
	switch mod {
	case bazaar.KeyQueryMod:
		pks, err = i.GetAt(db, data)
	case bazaar.PrefixQueryMod:
		pks, err = i.GetPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query modifier %q", mod)
	}
	if err != nil {
		return nil, err
	}

	res := make([]bazaar.Model, 0, len(pks))
	for _, pk := range pks {
		key := i.refKey(pk)
		res = append(res, bazaar.Pair(key, db.Get(key)))
	}
	return res, nil
}
