package exchange

import (
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
)

// exchange reserves 1500~1509
var (
	ErrPriceMustBeAboveZero      = errors.Register(1500, "price must be above zero")
	ErrAlreadyListed             = errors.Register(1501, "already listed")
	ErrNotListed                 = errors.Register(1502, "not listed")
	ErrNotOwner                  = errors.Register(1503, "not owner")
	ErrNotApprovedForMarketplace = errors.Register(1504, "not approved for marketplace")
	ErrPriceNotMet               = errors.Register(1505, "price not met")
	ErrNoProceeds                = errors.Register(1506, "no proceeds")
	ErrTransferFailed            = errors.Register(1507, "transfer failed")
)

// AlreadyListed returns ErrAlreadyListed carrying the token reference.
func AlreadyListed(collection, tokenID string) error {
	return errors.Wrapf(ErrAlreadyListed, "AlreadyListed(%q, %q)", collection, tokenID)
}

// NotListed returns ErrNotListed carrying the token reference.
func NotListed(collection, tokenID string) error {
	return errors.Wrapf(ErrNotListed, "NotListed(%q, %q)", collection, tokenID)
}

// PriceNotMet returns ErrPriceNotMet carrying the token reference and the
// expected price.
func PriceNotMet(collection, tokenID string, price coin.Coin) error {
	return errors.Wrapf(ErrPriceNotMet, "PriceNotMet(%q, %q, %s)", collection, tokenID, price)
}
