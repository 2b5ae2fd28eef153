package orm

import (
	"encoding/binary"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

const (
	// SeqID is a constant to use to get a default ID sequence
	SeqID = "id"
)

var seqPrefix = []byte("_s.")

// Sequence maintains a counter, and generates a
// series of keys. Each key is greater than the last,
// both NextInt() as well as bytes.Compare() on NextVal().
type Sequence struct {
	id []byte
}

// NewSequence creates a sequence with this id
func NewSequence(bucket, name string) Sequence {
	id := append([]byte(bucket+":"), []byte(name)...)
	return Sequence{
		id: append(seqPrefix, id...),
	}
}

// ID returns the id of the sequence
func (s *Sequence) ID() []byte {
	return s.id
}

// NextVal returns the next value as a byte slice, persisting the new
// counter state.
func (s *Sequence) NextVal(db bazaar.KVStore) ([]byte, error) {
	_, bz, err := s.increment(db)
	return bz, err
}

// NextInt returns the next value as an int64, persisting the new counter
// state.
func (s *Sequence) NextInt(db bazaar.KVStore) (int64, error) {
	val, _, err := s.increment(db)
	return val, err
}

// CurrentVal returns the latest value of the counter without changing it.
// Zero is returned if the sequence was never incremented.
func (s *Sequence) CurrentVal(db bazaar.ReadOnlyKVStore) (int64, error) {
	bz := db.Get(s.id)
	return decodeSequence(bz)
}

func (s *Sequence) increment(db bazaar.KVStore) (int64, []byte, error) {
	val, err := s.CurrentVal(db)
	if err != nil {
		return 0, nil, err
	}
	val++
	bz := encodeSequence(val)
	db.Set(s.id, bz)
	return val, bz, nil
}

func decodeSequence(bz []byte) (int64, error) {
	if bz == nil {
		return 0, nil
	}
	if len(bz) != 8 {
		return 0, errors.Wrapf(errors.ErrState, "sequence must be 8 bytes, got %d", len(bz))
	}
	return int64(binary.BigEndian.Uint64(bz)), nil
}

func encodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
