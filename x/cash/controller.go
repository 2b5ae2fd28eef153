package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
)

// Controller is the functionality needed by cash.Handler.
// Extensions that move value between accounts depend on this
// interface only.
type Controller interface {
	Balance(bazaar.ReadOnlyKVStore, bazaar.Address) (coin.Coins, error)
	MoveCoins(bazaar.KVStore, bazaar.Address, bazaar.Address, coin.Coin) error
	IssueCoins(bazaar.KVStore, bazaar.Address, coin.Coin) error
}

// BaseController is a simple implementation of controller
// wallet must return something that supports AsSet
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a basic controller implementation
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins held by the given address. ErrNotFound is
// returned for addresses that have no wallet.
func (c BaseController) Balance(store bazaar.ReadOnlyKVStore, src bazaar.Address) (coin.Coins, error) {
	state, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get account state")
	}
	if state == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "no wallet")
	}
	return AsCoins(state), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(store bazaar.KVStore, src bazaar.Address, dest bazaar.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %v", amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return errors.Wrap(err, "cannot get sender")
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %#v", src)
	}

	if !AsCoins(sender).Contains(amount) {
		return errors.Wrap(errors.ErrInsufficientAmount, "funds")
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return errors.Wrap(err, "cannot get recipient")
	}

	if err := AsSet(sender).Subtract(amount); err != nil {
		return errors.Wrap(err, "cannot subtract")
	}
	if err := c.bucket.Save(store, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}

	// A self transfer must see the subtracted state.
	if src.Equals(dest) {
		recipient = sender
	}
	if err := AsSet(recipient).Add(amount); err != nil {
		return errors.Wrap(err, "cannot add")
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(store bazaar.KVStore, dest bazaar.Address, amount coin.Coin) error {
	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := AsSet(recipient).Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}
