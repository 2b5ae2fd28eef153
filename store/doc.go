/*
Package store provides the in-memory key value stores and the cache wrap used
to run every transaction on a scratch pad.

BTreeCacheWrap keeps all pending writes in a btree and falls back to the
parent store for everything it does not hold. Write flushes the pending
writes into the parent, Discard drops them. MemStore is a cache wrap over an
empty store and is what the tests use.
*/
package store
