package exchange

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/nft"
)

var (
	_ bazaar.Msg = (*ListItemMsg)(nil)
	_ bazaar.Msg = (*CancelListingMsg)(nil)
	_ bazaar.Msg = (*BuyItemMsg)(nil)
	_ bazaar.Msg = (*UpdateListingMsg)(nil)
	_ bazaar.Msg = (*WithdrawProceedsMsg)(nil)
)

// ListItemMsg offers a token for sale. Seller defaults to the main signer.
type ListItemMsg struct {
	Metadata   *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Seller     bazaar.Address   `protobuf:"bytes,2,opt,name=seller,proto3,casttype=github.com/iov-one/bazaar.Address" json:"seller,omitempty"`
	Collection string           `protobuf:"bytes,3,opt,name=collection,proto3" json:"collection,omitempty"`
	TokenID    string           `protobuf:"bytes,4,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Price      *coin.Coin       `protobuf:"bytes,5,opt,name=price,proto3" json:"price,omitempty"`
}

func (ListItemMsg) Path() string {
	return "exchange/list_item"
}

func (m *ListItemMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	errs = errors.Append(errs, validateActor(m.Seller, "seller"))
	errs = errors.Append(errs, validateTokenRef(m.Collection, m.TokenID))
	errs = errors.Append(errs, validatePrice(m.Price))
	return errs
}

// CancelListingMsg withdraws a token from sale. The sender must be the
// current token owner.
type CancelListingMsg struct {
	Metadata   *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner      bazaar.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/bazaar.Address" json:"owner,omitempty"`
	Collection string           `protobuf:"bytes,3,opt,name=collection,proto3" json:"collection,omitempty"`
	TokenID    string           `protobuf:"bytes,4,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
}

func (CancelListingMsg) Path() string {
	return "exchange/cancel_listing"
}

func (m *CancelListingMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	errs = errors.Append(errs, validateActor(m.Owner, "owner"))
	errs = errors.Append(errs, validateTokenRef(m.Collection, m.TokenID))
	return errs
}

// BuyItemMsg purchases a listed token. Payment must equal the listing price
// and is collected from the buyer.
type BuyItemMsg struct {
	Metadata   *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Buyer      bazaar.Address   `protobuf:"bytes,2,opt,name=buyer,proto3,casttype=github.com/iov-one/bazaar.Address" json:"buyer,omitempty"`
	Collection string           `protobuf:"bytes,3,opt,name=collection,proto3" json:"collection,omitempty"`
	TokenID    string           `protobuf:"bytes,4,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Payment    *coin.Coin       `protobuf:"bytes,5,opt,name=payment,proto3" json:"payment,omitempty"`
}

func (BuyItemMsg) Path() string {
	return "exchange/buy_item"
}

func (m *BuyItemMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	errs = errors.Append(errs, validateActor(m.Buyer, "buyer"))
	errs = errors.Append(errs, validateTokenRef(m.Collection, m.TokenID))
	switch {
	case m.Payment == nil:
		errs = errors.Append(errs, errors.Wrap(errors.ErrAmount, "missing payment"))
	case !m.Payment.IsNonNegative():
		errs = errors.Append(errs, errors.Wrap(errors.ErrAmount, "negative payment"))
	default:
		errs = errors.Append(errs, errors.Wrap(m.Payment.Validate(), "payment"))
	}
	return errs
}

// UpdateListingMsg changes the price of an active listing. The sender must
// be the seller.
type UpdateListingMsg struct {
	Metadata   *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Seller     bazaar.Address   `protobuf:"bytes,2,opt,name=seller,proto3,casttype=github.com/iov-one/bazaar.Address" json:"seller,omitempty"`
	Collection string           `protobuf:"bytes,3,opt,name=collection,proto3" json:"collection,omitempty"`
	TokenID    string           `protobuf:"bytes,4,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Price      *coin.Coin       `protobuf:"bytes,5,opt,name=price,proto3" json:"price,omitempty"`
}

func (UpdateListingMsg) Path() string {
	return "exchange/update_listing"
}

func (m *UpdateListingMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	errs = errors.Append(errs, validateActor(m.Seller, "seller"))
	errs = errors.Append(errs, validateTokenRef(m.Collection, m.TokenID))
	errs = errors.Append(errs, validatePrice(m.Price))
	return errs
}

// WithdrawProceedsMsg pays the whole proceeds balance out to the seller.
type WithdrawProceedsMsg struct {
	Metadata *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Seller   bazaar.Address   `protobuf:"bytes,2,opt,name=seller,proto3,casttype=github.com/iov-one/bazaar.Address" json:"seller,omitempty"`
}

func (WithdrawProceedsMsg) Path() string {
	return "exchange/withdraw_proceeds"
}

func (m *WithdrawProceedsMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	errs = errors.Append(errs, validateActor(m.Seller, "seller"))
	return errs
}

// validateActor accepts an empty address, meaning the main signer.
func validateActor(a bazaar.Address, name string) error {
	if len(a) == 0 {
		return nil
	}
	return errors.Wrap(a.Validate(), name)
}

func validateTokenRef(collection, tokenID string) error {
	var errs error
	if !nft.IsValidCollectionID(collection) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "invalid collection id"))
	}
	if !nft.IsValidTokenID(tokenID) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "invalid token id"))
	}
	return errs
}

func validatePrice(price *coin.Coin) error {
	if price == nil || !price.IsPositive() {
		return ErrPriceMustBeAboveZero
	}
	return errors.Wrap(price.Validate(), "price")
}
