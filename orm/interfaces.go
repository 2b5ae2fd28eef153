/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket contains only one type of object. It has a
primary index (which may be composite), and may possess
secondary indexes. It may possess one or more secondary
indexes (1:1 or 1:N). Easy queries for one and iteration.

For inspiration, look at [storm](https://github.com/asdine/storm) built on top of [bolt kvstore](https://github.com/boltdb/bolt#using-buckets)
*/
package orm

import "github.com/iov-one/bazaar"

// Object is what is stored in the bucket
// Key is joined with the prefix to set the full key
// Value is the data stored
//
// this can be light wrapper around a protobuf-defined type
type Object interface {
	Keyed
	Cloneable

	// Validate returns error if the object is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error

	Value() CloneableData
}

// Keyed is anything that can identify itself
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable will create a new object that can be loaded into
type Cloneable interface {
	Clone() Object
}

// CloneableData is an intelligent Value that can be embedded
// in a simple object to handle much of the details.
type CloneableData interface {
	bazaar.Persistent
	Validate() error
	Copy() CloneableData
}

// Reader defines an interface that allows reading objects from the db
type Reader interface {
	Get(db bazaar.ReadOnlyKVStore, key []byte) (Object, error)
}
