package exchange

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	"github.com/iov-one/bazaar/x/nft"
)

// Listing is an active offer to sell a token for a fixed price. A token has
// at most one listing and a listing exists only while the token is for sale.
type Listing struct {
	Metadata   *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Collection string           `protobuf:"bytes,2,opt,name=collection,proto3" json:"collection,omitempty"`
	TokenID    string           `protobuf:"bytes,3,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Seller     bazaar.Address   `protobuf:"bytes,4,opt,name=seller,proto3,casttype=github.com/iov-one/bazaar.Address" json:"seller,omitempty"`
	Price      *coin.Coin       `protobuf:"bytes,5,opt,name=price,proto3" json:"price,omitempty"`
}

var _ orm.Model = (*Listing)(nil)

func (l *Listing) Validate() error {
	var errs error
	errs = errors.Append(errs, l.Metadata.Validate())
	if !nft.IsValidCollectionID(l.Collection) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrModel, "invalid collection id"))
	}
	if !nft.IsValidTokenID(l.TokenID) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrModel, "invalid token id"))
	}
	errs = errors.Append(errs, errors.Wrap(l.Seller.Validate(), "seller"))
	if l.Price == nil || !l.Price.IsPositive() {
		errs = errors.Append(errs, ErrPriceMustBeAboveZero)
	} else {
		errs = errors.Append(errs, errors.Wrap(l.Price.Validate(), "price"))
	}
	return errs
}

func (l *Listing) Copy() orm.CloneableData {
	return &Listing{
		Metadata:   l.Metadata.Copy(),
		Collection: l.Collection,
		TokenID:    l.TokenID,
		Seller:     l.Seller.Clone(),
		Price:      l.Price.Clone(),
	}
}

// Proceeds is the withdrawable credit of a seller, one coin per currency the
// seller was paid in. The record is never deleted, a withdrawal empties it.
type Proceeds struct {
	Metadata *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Coins    coin.Coins       `protobuf:"bytes,2,rep,name=coins,proto3" json:"coins,omitempty"`
}

var _ orm.Model = (*Proceeds)(nil)

func (p *Proceeds) Validate() error {
	if err := p.Metadata.Validate(); err != nil {
		return err
	}
	return errors.Wrap(p.Coins.Validate(), "coins")
}

func (p *Proceeds) Copy() orm.CloneableData {
	return &Proceeds{
		Metadata: p.Metadata.Copy(),
		Coins:    p.Coins.Clone(),
	}
}

// NewListingBucket returns a bucket for storing listings, keyed by
// nft.TokenKey and indexed by seller.
func NewListingBucket() orm.ModelBucket {
	return orm.NewModelBucket("listing", &Listing{},
		orm.WithIndex("seller", sellerIndexer, false),
	)
}

func sellerIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot index nil")
	}
	l, ok := obj.Value().(*Listing)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj.Value())
	}
	return l.Seller, nil
}

// NewProceedsBucket returns a bucket for storing proceeds, keyed by the
// seller address.
func NewProceedsBucket() orm.ModelBucket {
	return orm.NewModelBucket("proceeds", &Proceeds{})
}
