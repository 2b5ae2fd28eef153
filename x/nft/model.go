package nft

import (
	"regexp"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

var (
	// IsValidCollectionID is the pattern every collection identifier must match.
	IsValidCollectionID = regexp.MustCompile(`^[a-z0-9_\-]{3,32}$`).MatchString
	// IsValidTokenID is the pattern every token identifier must match.
	IsValidTokenID = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{1,64}$`).MatchString
)

// Collection groups tokens under a single administrator. Only the
// administrator may mint new tokens in a collection.
type Collection struct {
	Metadata *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Admin    bazaar.Address   `protobuf:"bytes,2,opt,name=admin,proto3,casttype=github.com/iov-one/bazaar.Address" json:"admin,omitempty"`
	Name     string           `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
}

var _ orm.Model = (*Collection)(nil)

func (c *Collection) Validate() error {
	var errs error
	errs = errors.Append(errs, c.Metadata.Validate())
	errs = errors.Append(errs, errors.Wrap(c.Admin.Validate(), "admin"))
	if len(c.Name) > 128 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrModel, "name too long"))
	}
	return errs
}

func (c *Collection) Copy() orm.CloneableData {
	return &Collection{
		Metadata: c.Metadata.Copy(),
		Admin:    c.Admin.Clone(),
		Name:     c.Name,
	}
}

// Token is a single non fungible item. Approved, when set, is the only
// account other than the owner that may transfer the token. The approval is
// cleared by every transfer.
type Token struct {
	Metadata   *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Collection string           `protobuf:"bytes,2,opt,name=collection,proto3" json:"collection,omitempty"`
	TokenID    string           `protobuf:"bytes,3,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Owner      bazaar.Address   `protobuf:"bytes,4,opt,name=owner,proto3,casttype=github.com/iov-one/bazaar.Address" json:"owner,omitempty"`
	Approved   bazaar.Address   `protobuf:"bytes,5,opt,name=approved,proto3,casttype=github.com/iov-one/bazaar.Address" json:"approved,omitempty"`
}

var _ orm.Model = (*Token)(nil)

func (t *Token) Validate() error {
	var errs error
	errs = errors.Append(errs, t.Metadata.Validate())
	if !IsValidCollectionID(t.Collection) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrModel, "invalid collection id"))
	}
	if !IsValidTokenID(t.TokenID) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrModel, "invalid token id"))
	}
	errs = errors.Append(errs, errors.Wrap(t.Owner.Validate(), "owner"))
	if t.Approved != nil {
		errs = errors.Append(errs, errors.Wrap(t.Approved.Validate(), "approved"))
	}
	return errs
}

func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Metadata:   t.Metadata.Copy(),
		Collection: t.Collection,
		TokenID:    t.TokenID,
		Owner:      t.Owner.Clone(),
		Approved:   t.Approved.Clone(),
	}
}

// TokenKey returns the primary key a token is stored under. Collection
// identifiers cannot contain a slash so the key is unique.
func TokenKey(collection, tokenID string) []byte {
	return []byte(collection + "/" + tokenID)
}

// NewCollectionBucket returns a bucket for storing collections, keyed by the
// collection identifier.
func NewCollectionBucket() orm.ModelBucket {
	return orm.NewModelBucket("nftcoll", &Collection{})
}

// NewTokenBucket returns a bucket for storing tokens, keyed by TokenKey and
// indexed by the owner address.
func NewTokenBucket() orm.ModelBucket {
	return orm.NewModelBucket("nfttoken", &Token{},
		orm.WithIndex("owner", ownerIndexer, false),
	)
}

func ownerIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot index nil")
	}
	t, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj.Value())
	}
	return t.Owner, nil
}
