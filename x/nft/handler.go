package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x"
)

const (
	createCollectionCost int64 = 100
	mintCost             int64 = 50
	approveCost          int64 = 10
	transferCost         int64 = 10
)

// RegisterQuery registers collections as "/nftcollections" and tokens as
// "/nfttokens". Tokens can also be queried by owner at "/nfttokens/owner".
func RegisterQuery(qr bazaar.QueryRouter) {
	NewCollectionBucket().Register("nftcollections", qr)
	NewTokenBucket().Register("nfttokens", qr)
}

// RegisterRoutes registers handlers for all messages of this package.
func RegisterRoutes(r bazaar.Registry, auth x.Authenticator, registry *Registry) {
	r.Handle(CreateCollectionMsg{}.Path(), &CreateCollectionHandler{auth: auth, registry: registry})
	r.Handle(MintMsg{}.Path(), &MintHandler{auth: auth, registry: registry})
	r.Handle(ApproveMsg{}.Path(), &ApproveHandler{auth: auth, registry: registry})
	r.Handle(TransferMsg{}.Path(), &TransferHandler{auth: auth, registry: registry})
}

type CreateCollectionHandler struct {
	auth     x.Authenticator
	registry *Registry
}

var _ bazaar.Handler = (*CreateCollectionHandler)(nil)

func (h CreateCollectionHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{GasAllocated: createCollectionCost}, nil
}

func (h CreateCollectionHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.registry.CreateCollection(db, msg.ID, msg.Name, msg.Admin); err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{Data: []byte(msg.ID)}, nil
}

func (h CreateCollectionHandler) validate(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*CreateCollectionMsg, error) {
	var msg CreateCollectionMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	return &msg, nil
}

type MintHandler struct {
	auth     x.Authenticator
	registry *Registry
}

var _ bazaar.Handler = (*MintHandler)(nil)

func (h MintHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{GasAllocated: mintCost}, nil
}

func (h MintHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, admin, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.registry.Mint(db, admin, msg.Collection, msg.TokenID, msg.Owner); err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{Data: TokenKey(msg.Collection, msg.TokenID)}, nil
}

// validate returns the message together with the collection admin, that
// must have signed the transaction.
func (h MintHandler) validate(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*MintMsg, bazaar.Address, error) {
	var msg MintMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	c, err := h.registry.Collection(db, msg.Collection)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, c.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "collection admin signature required")
	}
	return &msg, c.Admin, nil
}

type ApproveHandler struct {
	auth     x.Authenticator
	registry *Registry
}

var _ bazaar.Handler = (*ApproveHandler)(nil)

func (h ApproveHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{GasAllocated: approveCost}, nil
}

func (h ApproveHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	var approved bazaar.Address
	if len(msg.Approved) != 0 {
		approved = msg.Approved
	}
	if err := h.registry.Approve(db, owner, approved, msg.Collection, msg.TokenID); err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{}, nil
}

func (h ApproveHandler) validate(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*ApproveMsg, bazaar.Address, error) {
	var msg ApproveMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.registry.OwnerOf(db, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, owner, nil
}

type TransferHandler struct {
	auth     x.Authenticator
	registry *Registry
}

var _ bazaar.Handler = (*TransferHandler)(nil)

func (h TransferHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, operator, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.registry.TransferFrom(db, operator, owner, msg.Destination, msg.Collection, msg.TokenID); err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{}, nil
}

// validate returns the message, the signing operator and the current token
// owner.
func (h TransferHandler) validate(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*TransferMsg, bazaar.Address, bazaar.Address, error) {
	var msg TransferMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	t, err := h.registry.Token(db, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, nil, nil, err
	}
	switch {
	case h.auth.HasAddress(ctx, t.Owner):
		return &msg, t.Owner, t.Owner, nil
	case t.Approved != nil && h.auth.HasAddress(ctx, t.Approved):
		return &msg, t.Approved, t.Owner, nil
	default:
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner or approved signature required")
	}
}
