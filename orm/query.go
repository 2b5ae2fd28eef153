package orm

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr bazaar.Iterator) []bazaar.Model {
	defer itr.Close()

	res := []bazaar.Model{}
	for ; itr.Valid(); itr.Next() {
		mod := bazaar.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
	}
	return res
}

// prefixRange turns a prefix into a (start, end) range for an iterator.
// The end is the smallest key that is greater than every key starting with
// the prefix, or nil if no such key exists.
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix, drop trailing 0xFF bytes and bump the last one left
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for l := len(end) - 1; l >= 0; l-- {
		if end[l] != 0xFF {
			end[l]++
			return prefix, end[:l+1]
		}
	}
	// all bytes were 0xFF, no end to this range
	return prefix, nil
}

// queryPrefix returns all models with keys starting with the prefix.
func queryPrefix(db bazaar.ReadOnlyKVStore, prefix []byte) []bazaar.Model {
	start, end := prefixRange(prefix)
	return ConsumeIterator(db.Iterator(start, end))
}

// RegisterQuery exposes the raw key value store at "/". Keys are used as
// they are stored, without any bucket prefix.
func RegisterQuery(qr bazaar.QueryRouter) {
	qr.Register("/", rawQuery{})
}

type rawQuery struct{}

func (rawQuery) Query(db bazaar.ReadOnlyKVStore, mod string, data []byte) ([]bazaar.Model, error) {
	switch mod {
	case bazaar.KeyQueryMod:
		value := db.Get(data)
		if value == nil {
			return nil, nil
		}
		return []bazaar.Model{bazaar.Pair(data, value)}, nil
	case bazaar.PrefixQueryMod:
		return queryPrefix(db, data), nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query modifier %q", mod)
	}
}
