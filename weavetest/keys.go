package weavetest

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/crypto"
)

// NewKey returns a new, randomly generated private key.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a newly generated key.
func NewCondition() bazaar.Condition {
	return NewKey().PublicKey().Condition()
}

// SequenceID returns an 8 byte, big endian encoded representation of given
// number, as produced by orm.Sequence.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) bazaar.Address {
	raw := make([]byte, bazaar.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	return bazaar.Address(raw)
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation.
func ParseAddress(t testing.TB, encodedAddress string) bazaar.Address {
	t.Helper()

	addr, err := bazaar.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
