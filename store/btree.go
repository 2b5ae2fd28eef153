package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/bazaar"
)

const (
	// DefaultFreeListSize is the size we hold for free node in btree
	DefaultFreeListSize = btree.DefaultFreeListSize

	btreeDegree = 2
)

// MemStore returns a simple implementation useful for tests.
// There is no persistence here....
func MemStore() bazaar.CacheableKVStore {
	return NewBTreeCacheWrap(EmptyKVStore{}, nil)
}

// BTreeCacheWrap places a btree cache over a KVStore
type BTreeCacheWrap struct {
	bt     *btree.BTree
	free   *btree.FreeList
	parent bazaar.KVStore
}

var _ bazaar.KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a BTree to cache around this kv store.
// Nothing is written to the parent until Write is called.
//
// free may be nil, but set to an existing list to reuse it
// for memory savings
func NewBTreeCacheWrap(parent bazaar.KVStore, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:     btree.NewWithFreeList(btreeDegree, free),
		free:   free,
		parent: parent,
	}
}

// CacheWrap layers another BTree on top of this one.
func (b BTreeCacheWrap) CacheWrap() bazaar.KVCacheWrap {
	return NewBTreeCacheWrap(b, b.free)
}

// Write flushes all pending operations to the parent store, in key order,
// and then cleans up.
func (b BTreeCacheWrap) Write() {
	b.bt.Ascend(func(i btree.Item) bool {
		switch t := i.(type) {
		case setItem:
			b.parent.Set(t.key, t.value)
		case deletedItem:
			b.parent.Delete(t.key)
		}
		return true
	})
	b.Discard()
}

// Discard invalidates this CacheWrap and releases all data
func (b BTreeCacheWrap) Discard() {
	// clean up the btree -> freelist
	for b.bt.DeleteMin() != nil {
	}
}

// Set writes to the BTree
func (b BTreeCacheWrap) Set(key, value []byte) {
	assertKey(key)
	b.bt.ReplaceOrInsert(newSetItem(key, value))
}

// Delete marks the key as removed in the BTree
func (b BTreeCacheWrap) Delete(key []byte) {
	assertKey(key)
	b.bt.ReplaceOrInsert(newDeletedItem(key))
}

// Get reads from btree if there, else backing store
func (b BTreeCacheWrap) Get(key []byte) []byte {
	assertKey(key)
	switch t := b.bt.Get(bkey{key}).(type) {
	case setItem:
		return t.value
	case deletedItem:
		return nil
	}
	return b.parent.Get(key)
}

// Has reads from btree if there, else backing store
func (b BTreeCacheWrap) Has(key []byte) bool {
	assertKey(key)
	switch b.bt.Get(bkey{key}).(type) {
	case setItem:
		return true
	case deletedItem:
		return false
	}
	return b.parent.Has(key)
}

// Iterator over a domain of keys in ascending order.
// Combines results from btree and backing store
func (b BTreeCacheWrap) Iterator(start, end []byte) bazaar.Iterator {
	return NewSliceIterator(b.merge(start, end))
}

// ReverseIterator over a domain of keys in descending order.
// Combines results from btree and backing store
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) bazaar.Iterator {
	models := b.merge(start, end)
	for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
		models[i], models[j] = models[j], models[i]
	}
	return NewSliceIterator(models)
}

// merge returns all values in the [start, end) range with the pending
// operations applied over the parent content, in ascending key order.
func (b BTreeCacheWrap) merge(start, end []byte) []bazaar.Model {
	var parent []bazaar.Model
	it := b.parent.Iterator(start, end)
	for ; it.Valid(); it.Next() {
		parent = append(parent, bazaar.Pair(it.Key(), it.Value()))
	}
	it.Close()

	var pending []btree.Item
	collect := func(i btree.Item) bool {
		pending = append(pending, i)
		return true
	}
	switch {
	case start == nil && end == nil:
		b.bt.Ascend(collect)
	case start == nil:
		b.bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		b.bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		b.bt.AscendRange(bkey{start}, bkey{end}, collect)
	}

	res := make([]bazaar.Model, 0, len(parent)+len(pending))
	i := 0
	for _, item := range pending {
		key := item.(keyer).Key()
		for i < len(parent) && bytes.Compare(parent[i].Key, key) < 0 {
			res = append(res, parent[i])
			i++
		}
		// pending operation overrides the parent value
		if i < len(parent) && bytes.Equal(parent[i].Key, key) {
			i++
		}
		if s, ok := item.(setItem); ok {
			res = append(res, bazaar.Pair(s.key, s.value))
		}
	}
	return append(res, parent[i:]...)
}

func assertKey(key []byte) {
	if key == nil {
		panic("nil key")
	}
}

/////////////////////////////////////////////////////////
// Items to write to btree

// we enforce all data in our btree implements keyer so we
// can compare nicely
type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item
// and may be used for queries or embedded in data to store
type bkey struct {
	key []byte
}

var _ keyer = bkey{}
var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first
//
// panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	cmp := item.(keyer).Key()
	return bytes.Compare(k.key, cmp) < 0
}

type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{key}}
}

type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey{key}, value}
}
