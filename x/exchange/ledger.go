package exchange

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/x/nft"
)

// AssetRegistry is the token directory the ledger checks ownership with and
// moves sold tokens through.
type AssetRegistry interface {
	OwnerOf(db bazaar.ReadOnlyKVStore, collection, tokenID string) (bazaar.Address, error)
	GetApproved(db bazaar.ReadOnlyKVStore, collection, tokenID string) (bazaar.Address, error)
	TransferFrom(db bazaar.KVStore, operator, from, to bazaar.Address, collection, tokenID string) error
}

var _ AssetRegistry = (*nft.Registry)(nil)

// Bank moves value between the exchange and its users. Collect takes the
// payment attached to a purchase, Pay sends out withdrawn proceeds.
type Bank interface {
	Collect(db bazaar.KVStore, from bazaar.Address, amount coin.Coin) error
	Pay(db bazaar.KVStore, to bazaar.Address, amount coin.Coin) error
}

// Event kinds emitted by the ledger.
const (
	EventListingCreated    = "listing-created"
	EventListingCancelled  = "listing-cancelled"
	EventListingUpdated    = "listing-updated"
	EventItemPurchased     = "item-purchased"
	EventProceedsWithdrawn = "proceeds-withdrawn"
)

// ListingEvent is the payload of listing-created, listing-updated and
// listing-cancelled events. Price is not set for a cancellation.
type ListingEvent struct {
	Seller     bazaar.Address `json:"seller"`
	Collection string         `json:"collection"`
	TokenID    string         `json:"token_id"`
	Price      *coin.Coin     `json:"price,omitempty"`
}

// PurchaseEvent is the payload of an item-purchased event.
type PurchaseEvent struct {
	Buyer      bazaar.Address `json:"buyer"`
	Seller     bazaar.Address `json:"seller"`
	Collection string         `json:"collection"`
	TokenID    string         `json:"token_id"`
	Price      coin.Coin      `json:"price"`
}

// WithdrawalEvent is the payload of a proceeds-withdrawn event. Amounts
// holds one coin per currency paid out.
type WithdrawalEvent struct {
	Seller  bazaar.Address `json:"seller"`
	Amounts coin.Coins     `json:"amounts"`
}

// Ledger keeps the listings and the proceeds of every seller.
//
// Every operation either fully succeeds or leaves the store untouched. The
// ledger writes its own state before calling the registry or the bank, so a
// call that re-enters the ledger observes the state after the mutation.
type Ledger struct {
	registry AssetRegistry
	bank     Bank
	account  bazaar.Address
	listings orm.ModelBucket
	proceeds orm.ModelBucket
}

// NewLedger returns a ledger that acts on tokens as the given account. The
// account must be approved on a token before the token can be listed.
func NewLedger(registry AssetRegistry, bank Bank, account bazaar.Address) *Ledger {
	return &Ledger{
		registry: registry,
		bank:     bank,
		account:  account,
		listings: NewListingBucket(),
		proceeds: NewProceedsBucket(),
	}
}

// ListItem offers the token for sale at given price.
func (l *Ledger) ListItem(db bazaar.KVStore, collection, tokenID string, price coin.Coin, caller bazaar.Address) (bazaar.Event, error) {
	key := nft.TokenKey(collection, tokenID)
	switch err := l.listings.Has(db, key); {
	case err == nil:
		return bazaar.Event{}, AlreadyListed(collection, tokenID)
	case !errors.ErrNotFound.Is(err):
		return bazaar.Event{}, err
	}
	if err := l.requireOwner(db, collection, tokenID, caller); err != nil {
		return bazaar.Event{}, err
	}
	if !price.IsPositive() {
		return bazaar.Event{}, ErrPriceMustBeAboveZero
	}
	approved, err := l.registry.GetApproved(db, collection, tokenID)
	if err != nil {
		return bazaar.Event{}, errors.Wrap(err, "registry")
	}
	if !l.account.Equals(approved) {
		return bazaar.Event{}, ErrNotApprovedForMarketplace
	}

	listing := Listing{
		Metadata:   &bazaar.Metadata{Schema: 1},
		Collection: collection,
		TokenID:    tokenID,
		Seller:     caller,
		Price:      &price,
	}
	if _, err := l.listings.Put(db, key, &listing); err != nil {
		return bazaar.Event{}, errors.Wrap(err, "save listing")
	}
	return tokenEvent(EventListingCreated, collection, tokenID, ListingEvent{
		Seller:     caller,
		Collection: collection,
		TokenID:    tokenID,
		Price:      &price,
	})
}

// CancelListing removes the listing. The caller must be the current owner
// of the token.
func (l *Ledger) CancelListing(db bazaar.KVStore, collection, tokenID string, caller bazaar.Address) (bazaar.Event, error) {
	listing, err := l.listing(db, collection, tokenID)
	if err != nil {
		return bazaar.Event{}, err
	}
	if err := l.requireOwner(db, collection, tokenID, caller); err != nil {
		return bazaar.Event{}, err
	}
	if err := l.listings.Delete(db, nft.TokenKey(collection, tokenID)); err != nil {
		return bazaar.Event{}, errors.Wrap(err, "delete listing")
	}
	return tokenEvent(EventListingCancelled, collection, tokenID, ListingEvent{
		Seller:     listing.Seller,
		Collection: collection,
		TokenID:    tokenID,
	})
}

// BuyItem sells a listed token to the buyer. Payment must equal the listing
// price. The payment is collected into the exchange account and credited to
// the seller proceeds. The listing is removed before the token is
// transferred.
func (l *Ledger) BuyItem(db bazaar.KVStore, collection, tokenID string, payment coin.Coin, buyer bazaar.Address) (bazaar.Event, error) {
	var event bazaar.Event
	err := atomically(db, func(db bazaar.KVStore) error {
		listing, err := l.listing(db, collection, tokenID)
		if err != nil {
			return err
		}
		price := *listing.Price
		if !payment.Equals(price) {
			return PriceNotMet(collection, tokenID, price)
		}

		if err := l.bank.Collect(db, buyer, payment); err != nil {
			return errors.Wrap(err, "collect payment")
		}
		if err := l.credit(db, listing.Seller, payment); err != nil {
			return err
		}
		if err := l.listings.Delete(db, nft.TokenKey(collection, tokenID)); err != nil {
			return errors.Wrap(err, "delete listing")
		}
		if err := l.registry.TransferFrom(db, l.account, listing.Seller, buyer, collection, tokenID); err != nil {
			return errors.Wrap(err, "transfer token")
		}

		event, err = tokenEvent(EventItemPurchased, collection, tokenID, PurchaseEvent{
			Buyer:      buyer,
			Seller:     listing.Seller,
			Collection: collection,
			TokenID:    tokenID,
			Price:      price,
		})
		return err
	})
	return event, err
}

// UpdateListing changes the price of an active listing. Only the seller can
// update the price.
func (l *Ledger) UpdateListing(db bazaar.KVStore, collection, tokenID string, price coin.Coin, caller bazaar.Address) (bazaar.Event, error) {
	listing, err := l.listing(db, collection, tokenID)
	if err != nil {
		return bazaar.Event{}, err
	}
	if !listing.Seller.Equals(caller) {
		return bazaar.Event{}, errors.Wrap(ErrNotOwner, "caller is not the seller")
	}
	if !price.IsPositive() {
		return bazaar.Event{}, ErrPriceMustBeAboveZero
	}
	listing.Price = &price
	if _, err := l.listings.Put(db, nft.TokenKey(collection, tokenID), listing); err != nil {
		return bazaar.Event{}, errors.Wrap(err, "save listing")
	}
	return tokenEvent(EventListingUpdated, collection, tokenID, ListingEvent{
		Seller:     listing.Seller,
		Collection: collection,
		TokenID:    tokenID,
		Price:      &price,
	})
}

// WithdrawProceeds pays the whole proceeds balance of the caller out, every
// currency at once. The balance is emptied before the payment.
func (l *Ledger) WithdrawProceeds(db bazaar.KVStore, caller bazaar.Address) (bazaar.Event, error) {
	var event bazaar.Event
	err := atomically(db, func(db bazaar.KVStore) error {
		p, err := l.loadProceeds(db, caller)
		if err != nil {
			return err
		}
		if !p.Coins.IsPositive() {
			return ErrNoProceeds
		}
		amounts := p.Coins

		p.Coins = nil
		if _, err := l.proceeds.Put(db, caller, p); err != nil {
			return errors.Wrap(err, "save proceeds")
		}
		for _, c := range amounts {
			if err := l.bank.Pay(db, caller, *c); err != nil {
				return errors.Append(errors.Wrapf(ErrTransferFailed, "pay %s", c.Ticker), err)
			}
		}

		event, err = bazaar.NewEvent(EventProceedsWithdrawn, WithdrawalEvent{
			Seller:  caller,
			Amounts: amounts,
		})
		event.Key = caller
		return err
	})
	return event, err
}

// GetListing returns the active listing of the token. False is returned if
// the token is not listed.
func (l *Ledger) GetListing(db bazaar.ReadOnlyKVStore, collection, tokenID string) (*Listing, bool, error) {
	var listing Listing
	switch err := l.listings.One(db, nft.TokenKey(collection, tokenID), &listing); {
	case err == nil:
		return &listing, true, nil
	case errors.ErrNotFound.Is(err):
		return nil, false, nil
	default:
		return nil, false, err
	}
}

// GetProceeds returns the withdrawable balance of the account, one coin per
// currency. Accounts that never sold anything have an empty balance.
func (l *Ledger) GetProceeds(db bazaar.ReadOnlyKVStore, account bazaar.Address) (coin.Coins, error) {
	p, err := l.loadProceeds(db, account)
	if err != nil {
		return nil, err
	}
	return p.Coins, nil
}

func (l *Ledger) listing(db bazaar.ReadOnlyKVStore, collection, tokenID string) (*Listing, error) {
	listing, ok, err := l.GetListing(db, collection, tokenID)
	if err != nil {
		return nil, errors.Wrap(err, "load listing")
	}
	if !ok {
		return nil, NotListed(collection, tokenID)
	}
	return listing, nil
}

func (l *Ledger) requireOwner(db bazaar.ReadOnlyKVStore, collection, tokenID string, caller bazaar.Address) error {
	owner, err := l.registry.OwnerOf(db, collection, tokenID)
	if err != nil {
		return errors.Wrap(err, "registry")
	}
	if !owner.Equals(caller) {
		return errors.Wrap(ErrNotOwner, "caller does not own the token")
	}
	return nil
}

// loadProceeds returns the proceeds record of the account. A missing record
// is returned as an empty balance.
func (l *Ledger) loadProceeds(db bazaar.ReadOnlyKVStore, account bazaar.Address) (*Proceeds, error) {
	var p Proceeds
	switch err := l.proceeds.One(db, account, &p); {
	case err == nil:
		return &p, nil
	case errors.ErrNotFound.Is(err):
		return &Proceeds{Metadata: &bazaar.Metadata{Schema: 1}}, nil
	default:
		return nil, errors.Wrap(err, "load proceeds")
	}
}

func (l *Ledger) credit(db bazaar.KVStore, seller bazaar.Address, amount coin.Coin) error {
	p, err := l.loadProceeds(db, seller)
	if err != nil {
		return err
	}
	if p.Coins, err = p.Coins.Add(amount); err != nil {
		return errors.Wrap(err, "credit proceeds")
	}
	if _, err := l.proceeds.Put(db, seller, p); err != nil {
		return errors.Wrap(err, "save proceeds")
	}
	return nil
}

// tokenEvent builds an event keyed by the token it is about, so that every
// event of one token lands on the same stream partition.
func tokenEvent(kind, collection, tokenID string, payload interface{}) (bazaar.Event, error) {
	event, err := bazaar.NewEvent(kind, payload)
	event.Key = nft.TokenKey(collection, tokenID)
	return event, err
}

// atomically runs fn against a cache of db. Changes are written to db only
// if fn succeeds. A store that cannot cache wrap itself is wrapped with an
// in memory btree cache.
func atomically(db bazaar.KVStore, fn func(bazaar.KVStore) error) error {
	var cache bazaar.KVCacheWrap
	if cdb, ok := db.(bazaar.CacheableKVStore); ok {
		cache = cdb.CacheWrap()
	} else {
		cache = store.NewBTreeCacheWrap(db, nil)
	}
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	cache.Write()
	return nil
}
