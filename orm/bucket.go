package orm

import (
	"regexp"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data as well
// as references to secondary indexes and sequences.
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
type Bucket struct {
	name    string
	prefix  []byte
	proto   Cloneable
	indexes []Index
}

var _ Reader = Bucket{}

// NewBucket creates a bucket to store data
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(errors.Wrapf(errors.ErrInput, "illegal bucket name: %q", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of this bucket.
func (b Bucket) Name() string {
	return b.name
}

// Register registers this Bucket and all indexes to receive queries.
// The bucket is available at /<name>, every index at /<name>/<index>.
// An empty name falls back to the bucket name.
func (b Bucket) Register(name string, r bazaar.QueryRouter) {
	if name == "" {
		name = b.name
	}
	root := "/" + name
	r.Register(root, b)
	for _, ni := range b.indexes {
		r.Register(root+"/"+ni.name, ni)
	}
}

// Query handles queries from the QueryRouter.
func (b Bucket) Query(db bazaar.ReadOnlyKVStore, mod string, data []byte) ([]bazaar.Model, error) {
	switch mod {
	case bazaar.KeyQueryMod:
		key := b.DBKey(data)
		value := db.Get(key)
		if value == nil {
			return nil, nil
		}
		return []bazaar.Model{bazaar.Pair(key, value)}, nil
	case bazaar.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data)), nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query modifier %q", mod)
	}
}

// DBKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	res := make([]byte, l+len(key))
	copy(res, b.prefix)
	copy(res[l:], key)
	return res
}

// Get one element
func (b Bucket) Get(db bazaar.ReadOnlyKVStore, key []byte) (Object, error) {
	value := db.Get(b.DBKey(key))
	if value == nil {
		return nil, nil
	}
	return b.Parse(key, value)
}

// Has returns true if an object is stored under the given key.
func (b Bucket) Has(db bazaar.ReadOnlyKVStore, key []byte) bool {
	return db.Has(b.DBKey(key))
}

// Parse takes a key and value data (bytes) and
// constructs the object to represent it.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot parse %s: %s", b.name, err)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save will write a model, it must be of the same type as proto
func (b Bucket) Save(db bazaar.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return err
	}

	bz, err := model.Value().Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal")
	}

	// update all indexes
	if len(b.indexes) > 0 {
		prev, err := b.Get(db, model.Key())
		if err != nil {
			return err
		}
		if err := b.updateIndexes(db, prev, model); err != nil {
			return err
		}
	}

	// now save this one
	db.Set(b.DBKey(model.Key()), bz)
	return nil
}

// Delete will remove the value at a key
func (b Bucket) Delete(db bazaar.KVStore, key []byte) error {
	// update all indexes
	if len(b.indexes) > 0 {
		prev, err := b.Get(db, key)
		if err != nil {
			return err
		}
		if prev != nil {
			if err := b.updateIndexes(db, prev, nil); err != nil {
				return err
			}
		}
	}

	// now delete this one
	db.Delete(b.DBKey(key))
	return nil
}

func (b Bucket) updateIndexes(db bazaar.KVStore, prev Object, save Object) error {
	for _, ni := range b.indexes {
		if err := ni.Update(db, prev, save); err != nil {
			return err
		}
	}
	return nil
}

// Sequence returns a Sequence by name
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}

// WithIndex returns a copy of this bucket with given index,
// panics if it an index with that name is already registered.
//
// Designed to be chained.
func (b Bucket) WithIndex(name string, indexer Indexer, unique bool) Bucket {
	return b.withIndex(NewIndex(name, indexer, unique, b.DBKey))
}

// WithMultiKeyIndex returns a copy of this bucket with given index that
// may produce any number of keys for a single object.
func (b Bucket) WithMultiKeyIndex(name string, indexer MultiKeyIndexer, unique bool) Bucket {
	return b.withIndex(NewMultiKeyIndex(name, indexer, unique, b.DBKey))
}

func (b Bucket) withIndex(idx Index) Bucket {
	// no duplicate indexes! (panic on init)
	if _, ok := b.findIndex(idx.name); ok {
		panic(errors.Wrapf(errors.ErrDuplicate, "index %s in bucket %s", idx.name, b.name))
	}
	indexes := make([]Index, len(b.indexes), len(b.indexes)+1)
	copy(indexes, b.indexes)
	b.indexes = append(indexes, idx)
	return b
}

func (b Bucket) findIndex(name string) (Index, bool) {
	for _, ni := range b.indexes {
		if ni.name == name {
			return ni, true
		}
	}
	return Index{}, false
}

// GetIndexed queries the named index for the given key
func (b Bucket) GetIndexed(db bazaar.ReadOnlyKVStore, name string, key []byte) ([]Object, error) {
	idx, ok := b.findIndex(name)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInput, "no index %q in bucket %s", name, b.name)
	}
	refs, err := idx.GetAt(db, key)
	if err != nil {
		return nil, err
	}
	return b.readRefs(db, refs)
}

// GetIndexedLike queries the named index for all keys starting with the
// given prefix.
func (b Bucket) GetIndexedLike(db bazaar.ReadOnlyKVStore, name string, prefix []byte) ([]Object, error) {
	idx, ok := b.findIndex(name)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInput, "no index %q in bucket %s", name, b.name)
	}
	refs, err := idx.GetPrefix(db, prefix)
	if err != nil {
		return nil, err
	}
	return b.readRefs(db, refs)
}

func (b Bucket) readRefs(db bazaar.ReadOnlyKVStore, refs [][]byte) ([]Object, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	res := make([]Object, 0, len(refs))
	for _, pk := range refs {
		obj, err := b.Get(db, pk)
		if err != nil {
			return nil, err
		}
		if obj == nil {
			return nil, errors.Wrapf(errors.ErrDatabase, "index points to missing %s %X", b.name, pk)
		}
		res = append(res, obj)
	}
	return res, nil
}
