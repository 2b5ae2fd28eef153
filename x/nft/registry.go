package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

// Registry is the directory of token ownership and transfer approvals.
// Every method operates on the store it is given, so a registry instance
// can be shared by all handlers.
type Registry struct {
	collections orm.ModelBucket
	tokens      orm.ModelBucket
}

// NewRegistry returns a registry backed by the default buckets.
func NewRegistry() *Registry {
	return &Registry{
		collections: NewCollectionBucket(),
		tokens:      NewTokenBucket(),
	}
}

// Collection returns the collection with given identifier.
func (r *Registry) Collection(db bazaar.ReadOnlyKVStore, id string) (*Collection, error) {
	var c Collection
	if err := r.collections.One(db, []byte(id), &c); err != nil {
		return nil, errors.Wrapf(err, "collection %q", id)
	}
	return &c, nil
}

// CreateCollection registers a new collection administrated by admin.
func (r *Registry) CreateCollection(db bazaar.KVStore, id, name string, admin bazaar.Address) error {
	if !IsValidCollectionID(id) {
		return errors.Wrapf(errors.ErrInput, "invalid collection id %q", id)
	}
	switch err := r.collections.Has(db, []byte(id)); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "collection %q", id)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	c := Collection{
		Metadata: &bazaar.Metadata{Schema: 1},
		Admin:    admin,
		Name:     name,
	}
	_, err := r.collections.Put(db, []byte(id), &c)
	return err
}

// Token returns the token stored under given collection and token ID.
func (r *Registry) Token(db bazaar.ReadOnlyKVStore, collection, tokenID string) (*Token, error) {
	var t Token
	if err := r.tokens.One(db, TokenKey(collection, tokenID), &t); err != nil {
		return nil, errors.Wrapf(err, "token %s/%s", collection, tokenID)
	}
	return &t, nil
}

// TokensOf returns all tokens owned by given address.
func (r *Registry) TokensOf(db bazaar.ReadOnlyKVStore, owner bazaar.Address) ([]Token, error) {
	var tokens []Token
	if _, err := r.tokens.ByIndex(db, "owner", owner, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Mint creates a new token owned by owner. Only the collection admin can
// mint and a token ID cannot be used twice within a collection.
func (r *Registry) Mint(db bazaar.KVStore, caller bazaar.Address, collection, tokenID string, owner bazaar.Address) error {
	c, err := r.Collection(db, collection)
	if err != nil {
		return err
	}
	if !c.Admin.Equals(caller) {
		return errors.Wrap(errors.ErrUnauthorized, "only the collection admin can mint")
	}
	key := TokenKey(collection, tokenID)
	switch err := r.tokens.Has(db, key); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "token %s/%s", collection, tokenID)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	t := Token{
		Metadata:   &bazaar.Metadata{Schema: 1},
		Collection: collection,
		TokenID:    tokenID,
		Owner:      owner,
	}
	_, err = r.tokens.Put(db, key, &t)
	return err
}

// OwnerOf returns the current owner of the token.
func (r *Registry) OwnerOf(db bazaar.ReadOnlyKVStore, collection, tokenID string) (bazaar.Address, error) {
	t, err := r.Token(db, collection, tokenID)
	if err != nil {
		return nil, err
	}
	return t.Owner, nil
}

// GetApproved returns the account approved to transfer the token, or nil
// if there is none.
func (r *Registry) GetApproved(db bazaar.ReadOnlyKVStore, collection, tokenID string) (bazaar.Address, error) {
	t, err := r.Token(db, collection, tokenID)
	if err != nil {
		return nil, err
	}
	return t.Approved, nil
}

// Approve sets the account that may transfer the token on behalf of its
// owner. Only the owner can approve. Approving nil clears the approval.
func (r *Registry) Approve(db bazaar.KVStore, caller, to bazaar.Address, collection, tokenID string) error {
	t, err := r.Token(db, collection, tokenID)
	if err != nil {
		return err
	}
	if !t.Owner.Equals(caller) {
		return errors.Wrap(errors.ErrUnauthorized, "only the owner can approve")
	}
	if to != nil && to.Equals(t.Owner) {
		return errors.Wrap(errors.ErrInput, "cannot approve the current owner")
	}
	t.Approved = to
	_, err = r.tokens.Put(db, TokenKey(collection, tokenID), t)
	return err
}

// TransferFrom moves the token from its owner to a new one. The operator
// must be either the owner or the approved account and from must be the
// current owner. Any existing approval is cleared.
func (r *Registry) TransferFrom(db bazaar.KVStore, operator, from, to bazaar.Address, collection, tokenID string) error {
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	t, err := r.Token(db, collection, tokenID)
	if err != nil {
		return err
	}
	if !t.Owner.Equals(from) {
		return errors.Wrap(errors.ErrUnauthorized, "from is not the owner")
	}
	if !operator.Equals(t.Owner) && (t.Approved == nil || !operator.Equals(t.Approved)) {
		return errors.Wrap(errors.ErrUnauthorized, "operator is neither owner nor approved")
	}
	t.Owner = to
	t.Approved = nil
	_, err = r.tokens.Put(db, TokenKey(collection, tokenID), t)
	return err
}
