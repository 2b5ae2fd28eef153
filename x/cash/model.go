/*
Package cash defines a simple implementation of sending coins
between multi-signature wallets.
*/
package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Set is the content of a wallet: all coins held by a single address.
type Set struct {
	Metadata *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Coins    []*coin.Coin     `protobuf:"bytes,2,rep,name=coins,proto3" json:"coins,omitempty"`
}

var _ orm.CloneableData = (*Set)(nil)

// Validate requires that all coins are in alphabetical
func (s *Set) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return coin.Coins(s.Coins).Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() orm.CloneableData {
	return &Set{
		Metadata: s.Metadata.Copy(),
		Coins:    coin.Coins(s.Coins).Clone(),
	}
}

// Add modifies the wallet to add Coin c
func (s *Set) Add(c coin.Coin) error {
	cs, err := coin.Coins(s.Coins).Add(c)
	if err != nil {
		return err
	}
	s.Coins = cs
	return nil
}

// Subtract modifies the wallet to remove Coin c
func (s *Set) Subtract(c coin.Coin) error {
	return s.Add(c.Negative())
}

// Concat combines the coins to make sure they are sorted
// and rounded off, with no duplicates or 0 values.
func (s *Set) Concat(coins coin.Coins) error {
	joint, err := coin.Coins(s.Coins).Combine(coins)
	if err != nil {
		return err
	}
	s.Coins = joint
	return nil
}

// NewWallet creates an empty wallet with this address
// serves as an object for the bucket
func NewWallet(key bazaar.Address) orm.Object {
	return orm.NewSimpleObj(key, &Set{
		Metadata: &bazaar.Metadata{Schema: 1},
	})
}

// WalletWith creates an wallet with a balance
func WalletWith(key bazaar.Address, coins ...*coin.Coin) (orm.Object, error) {
	obj := NewWallet(key)
	if err := AsSet(obj).Concat(coins); err != nil {
		return nil, err
	}
	return obj, nil
}

// AsSet safely extracts a Set value from the object
func AsSet(obj orm.Object) *Set {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Set)
}

// AsCoins returns the coins stored in the wallet
func AsCoins(obj orm.Object) coin.Coins {
	if set := AsSet(obj); set != nil {
		return set.Coins
	}
	return nil
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// GetOrCreate will return the object if found, or create one
// if not.
func (b Bucket) GetOrCreate(db bazaar.KVStore, key bazaar.Address) (orm.Object, error) {
	obj, err := b.Get(db, key)
	if err == nil && obj == nil {
		obj = NewWallet(key)
	}
	return obj, err
}

// Save enforces the proper type
func (b Bucket) Save(db bazaar.KVStore, obj orm.Object) error {
	if _, ok := obj.Value().(*Set); !ok {
		return errors.WithType(errors.ErrModel, obj.Value())
	}
	return b.Bucket.Save(db, obj)
}
