package orm

import (
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestBucketNames(t *testing.T) {
	cases := map[string]bool{
		"cash":            true,
		"nft_token":       true,
		"ab":              false,
		"Upper":           false,
		"with:col":        false,
		"muchtoolongname": false,
	}
	for name, valid := range cases {
		t.Run(name, func(t *testing.T) {
			fn := func() { NewBucket(name, NewSimpleObj(nil, new(ownedCounter))) }
			if valid {
				fn()
			} else {
				assert.Panics(t, fn)
			}
		})
	}
}

func TestBucketSaveGetDelete(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnt", NewSimpleObj(nil, new(ownedCounter)))

	obj, err := b.Get(db, []byte("missing"))
	assert.Nil(t, err)
	assert.Nil(t, obj)

	// invalid objects are never written
	bad := NewSimpleObj([]byte("bad"), newCounter("alice", -1))
	if err := b.Save(db, bad); !errors.ErrModel.Is(err) {
		t.Fatalf("want model error, got %+v", err)
	}
	if b.Has(db, []byte("bad")) {
		t.Fatal("invalid object stored")
	}
	missingKey := NewSimpleObj(nil, newCounter("alice", 1))
	assert.IsErr(t, errors.ErrEmpty, b.Save(db, missingKey))

	first := NewSimpleObj([]byte("first"), newCounter("alice", 7))
	assert.Nil(t, b.Save(db, first))
	assert.Equal(t, true, db.Has([]byte("cnt:first")))

	obj, err = b.Get(db, []byte("first"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("first"), obj.Key())
	assert.Equal(t, newCounter("alice", 7), obj.Value())

	assert.Nil(t, b.Delete(db, []byte("first")))
	obj, err = b.Get(db, []byte("first"))
	assert.Nil(t, err)
	assert.Nil(t, obj)
}

func TestBucketDBKeyDoesNotAlias(t *testing.T) {
	b := NewBucket("cnt", NewSimpleObj(nil, new(ownedCounter)))
	a := b.DBKey([]byte("a"))
	c := b.DBKey([]byte("c"))
	assert.Equal(t, []byte("cnt:a"), a)
	assert.Equal(t, []byte("cnt:c"), c)
}

func TestBucketIndexes(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnt", NewSimpleObj(nil, new(ownedCounter))).
		WithIndex("owner", ownerIndexer, false).
		WithMultiKeyIndex("tags", tagsIndexer, true)

	assert.Nil(t, b.Save(db, NewSimpleObj([]byte("one"), newCounter("alice", 1, "red"))))
	assert.Nil(t, b.Save(db, NewSimpleObj([]byte("two"), newCounter("alice", 2, "blue", "green"))))
	assert.Nil(t, b.Save(db, NewSimpleObj([]byte("three"), newCounter("bob", 3))))

	// unique constraint on tags, a failed save leaves partial index
	// updates behind so it must run on a discarded cache
	cache := db.CacheWrap()
	err := b.Save(cache, NewSimpleObj([]byte("four"), newCounter("carol", 4, "red")))
	assert.IsErr(t, errors.ErrDuplicate, err)
	cache.Discard()

	objs, err := b.GetIndexed(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(objs))
	assert.Equal(t, []byte("one"), objs[0].Key())
	assert.Equal(t, []byte("two"), objs[1].Key())

	// moving the object between index keys
	assert.Nil(t, b.Save(db, NewSimpleObj([]byte("one"), newCounter("bob", 1, "yellow"))))
	objs, err = b.GetIndexed(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(objs))
	objs, err = b.GetIndexed(db, "owner", []byte("bob"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(objs))

	// the released tag can be taken now
	assert.Nil(t, b.Save(db, NewSimpleObj([]byte("four"), newCounter("carol", 4, "red"))))
	objs, err = b.GetIndexed(db, "tags", []byte("red"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(objs))
	assert.Equal(t, []byte("four"), objs[0].Key())

	// delete cleans up the index
	assert.Nil(t, b.Delete(db, []byte("two")))
	objs, err = b.GetIndexed(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(objs))
	objs, err = b.GetIndexed(db, "tags", []byte("green"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(objs))

	_, err = b.GetIndexed(db, "unknown", []byte("x"))
	assert.IsErr(t, errors.ErrInput, err)

	objs, err = b.GetIndexedLike(db, "owner", []byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(objs))
}

func TestBucketDuplicateIndexPanics(t *testing.T) {
	b := NewBucket("cnt", NewSimpleObj(nil, new(ownedCounter))).
		WithIndex("owner", ownerIndexer, false)
	assert.Panics(t, func() { b.WithIndex("owner", ownerIndexer, true) })
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnt", NewSimpleObj(nil, new(ownedCounter))).
		WithIndex("owner", ownerIndexer, false)

	qr := bazaar.NewQueryRouter()
	b.Register("", qr)
	assert.Equal(t, true, qr.Handler("/cnt") != nil)
	assert.Equal(t, true, qr.Handler("/cnt/owner") != nil)

	assert.Nil(t, b.Save(db, NewSimpleObj([]byte("aa"), newCounter("alice", 1))))
	assert.Nil(t, b.Save(db, NewSimpleObj([]byte("ab"), newCounter("alice", 2))))
	assert.Nil(t, b.Save(db, NewSimpleObj([]byte("b"), newCounter("bob", 3))))

	res, err := qr.Handler("/cnt").Query(db, bazaar.KeyQueryMod, []byte("aa"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, []byte("cnt:aa"), res[0].Key)

	res, err = qr.Handler("/cnt").Query(db, bazaar.KeyQueryMod, []byte("zz"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))

	res, err = qr.Handler("/cnt").Query(db, bazaar.PrefixQueryMod, []byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res))

	res, err = qr.Handler("/cnt/owner").Query(db, bazaar.KeyQueryMod, []byte("bob"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, []byte("cnt:b"), res[0].Key)

	var c ownedCounter
	assert.Nil(t, c.Unmarshal(res[0].Value))
	assert.Equal(t, int64(3), c.Count)

	_, err = qr.Handler("/cnt").Query(db, "random", nil)
	assert.IsErr(t, errors.ErrInput, err)
}
