package exchange

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x"
)

const (
	listItemCost      int64 = 100
	cancelListingCost int64 = 50
	buyItemCost       int64 = 200
	updateListingCost int64 = 50
	withdrawCost      int64 = 100
)

// RegisterQuery registers listings as "/listings" (with the seller index at
// "/listings/seller") and proceeds as "/proceeds".
func RegisterQuery(qr bazaar.QueryRouter) {
	NewListingBucket().Register("listings", qr)
	NewProceedsBucket().Register("proceeds", qr)
}

// RegisterRoutes registers handlers for all messages of this package.
func RegisterRoutes(r bazaar.Registry, auth x.Authenticator, ledger *Ledger) {
	r.Handle(ListItemMsg{}.Path(), &ListItemHandler{auth: auth, ledger: ledger})
	r.Handle(CancelListingMsg{}.Path(), &CancelListingHandler{auth: auth, ledger: ledger})
	r.Handle(BuyItemMsg{}.Path(), &BuyItemHandler{auth: auth, ledger: ledger})
	r.Handle(UpdateListingMsg{}.Path(), &UpdateListingHandler{auth: auth, ledger: ledger})
	r.Handle(WithdrawProceedsMsg{}.Path(), &WithdrawProceedsHandler{auth: auth, ledger: ledger})
	r.Handle(UpdateConfigurationMsg{}.Path(), NewConfigHandler(auth))
}

type ListItemHandler struct {
	auth   x.Authenticator
	ledger *Ledger
}

var _ bazaar.Handler = (*ListItemHandler)(nil)

func (h *ListItemHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{GasAllocated: listItemCost}, nil
}

func (h *ListItemHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, seller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	event, err := h.ledger.ListItem(db, msg.Collection, msg.TokenID, *msg.Price, seller)
	if err != nil {
		return nil, err
	}
	return result(event, msg.Collection, msg.TokenID, tag("seller", seller)), nil
}

func (h *ListItemHandler) validate(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*ListItemMsg, bazaar.Address, error) {
	var msg ListItemMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	seller, err := actor(ctx, h.auth, msg.Seller)
	if err != nil {
		return nil, nil, err
	}
	if err := requireCurrency(db, *msg.Price); err != nil {
		return nil, nil, err
	}
	return &msg, seller, nil
}

type CancelListingHandler struct {
	auth   x.Authenticator
	ledger *Ledger
}

var _ bazaar.Handler = (*CancelListingHandler)(nil)

func (h *CancelListingHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{GasAllocated: cancelListingCost}, nil
}

func (h *CancelListingHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	event, err := h.ledger.CancelListing(db, msg.Collection, msg.TokenID, owner)
	if err != nil {
		return nil, err
	}
	return result(event, msg.Collection, msg.TokenID, tag("owner", owner)), nil
}

func (h *CancelListingHandler) validate(ctx bazaar.Context, tx bazaar.Tx) (*CancelListingMsg, bazaar.Address, error) {
	var msg CancelListingMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := actor(ctx, h.auth, msg.Owner)
	if err != nil {
		return nil, nil, err
	}
	return &msg, owner, nil
}

type BuyItemHandler struct {
	auth   x.Authenticator
	ledger *Ledger
}

var _ bazaar.Handler = (*BuyItemHandler)(nil)

func (h *BuyItemHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{GasAllocated: buyItemCost}, nil
}

func (h *BuyItemHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, buyer, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	event, err := h.ledger.BuyItem(db, msg.Collection, msg.TokenID, *msg.Payment, buyer)
	if err != nil {
		return nil, err
	}
	return result(event, msg.Collection, msg.TokenID, tag("buyer", buyer)), nil
}

func (h *BuyItemHandler) validate(ctx bazaar.Context, tx bazaar.Tx) (*BuyItemMsg, bazaar.Address, error) {
	var msg BuyItemMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	buyer, err := actor(ctx, h.auth, msg.Buyer)
	if err != nil {
		return nil, nil, err
	}
	return &msg, buyer, nil
}

type UpdateListingHandler struct {
	auth   x.Authenticator
	ledger *Ledger
}

var _ bazaar.Handler = (*UpdateListingHandler)(nil)

func (h *UpdateListingHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{GasAllocated: updateListingCost}, nil
}

func (h *UpdateListingHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, seller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	event, err := h.ledger.UpdateListing(db, msg.Collection, msg.TokenID, *msg.Price, seller)
	if err != nil {
		return nil, err
	}
	return result(event, msg.Collection, msg.TokenID, tag("seller", seller)), nil
}

func (h *UpdateListingHandler) validate(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*UpdateListingMsg, bazaar.Address, error) {
	var msg UpdateListingMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	seller, err := actor(ctx, h.auth, msg.Seller)
	if err != nil {
		return nil, nil, err
	}
	if err := requireCurrency(db, *msg.Price); err != nil {
		return nil, nil, err
	}
	return &msg, seller, nil
}

type WithdrawProceedsHandler struct {
	auth   x.Authenticator
	ledger *Ledger
}

var _ bazaar.Handler = (*WithdrawProceedsHandler)(nil)

func (h *WithdrawProceedsHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h *WithdrawProceedsHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	seller, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	event, err := h.ledger.WithdrawProceeds(db, seller)
	if err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{
		Tags:   []common.KVPair{tag("seller", seller)},
		Events: []bazaar.Event{event},
	}, nil
}

func (h *WithdrawProceedsHandler) validate(ctx bazaar.Context, tx bazaar.Tx) (bazaar.Address, error) {
	var msg WithdrawProceedsMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return actor(ctx, h.auth, msg.Seller)
}

// actor returns the account a message acts on behalf of. An empty declared
// address stands for the main signer, any other address must have signed.
func actor(ctx bazaar.Context, auth x.Authenticator, declared bazaar.Address) (bazaar.Address, error) {
	if len(declared) == 0 {
		signer := x.MainSigner(ctx, auth)
		if signer == nil {
			return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
		}
		return signer.Address(), nil
	}
	if !auth.HasAddress(ctx, declared) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s did not sign", declared)
	}
	return declared, nil
}

// requireCurrency ensures the price uses the configured currency.
func requireCurrency(db bazaar.ReadOnlyKVStore, price coin.Coin) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if price.Ticker != conf.Currency {
		return errors.Wrapf(errors.ErrCurrency, "prices must be in %s", conf.Currency)
	}
	return nil
}

func tag(key string, value bazaar.Address) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(value.String())}
}

func result(event bazaar.Event, collection, tokenID string, tags ...common.KVPair) *bazaar.DeliverResult {
	tags = append(tags,
		common.KVPair{Key: []byte("collection"), Value: []byte(collection)},
		common.KVPair{Key: []byte("token"), Value: []byte(tokenID)},
	)
	return &bazaar.DeliverResult{
		Data:   []byte(event.Kind),
		Tags:   tags,
		Events: []bazaar.Event{event},
	}
}
