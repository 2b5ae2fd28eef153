package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

var (
	_ bazaar.Msg = (*CreateCollectionMsg)(nil)
	_ bazaar.Msg = (*MintMsg)(nil)
	_ bazaar.Msg = (*ApproveMsg)(nil)
	_ bazaar.Msg = (*TransferMsg)(nil)
)

// CreateCollectionMsg registers a new collection. The admin must sign.
type CreateCollectionMsg struct {
	Metadata *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	ID       string           `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	Admin    bazaar.Address   `protobuf:"bytes,3,opt,name=admin,proto3,casttype=github.com/iov-one/bazaar.Address" json:"admin,omitempty"`
	Name     string           `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
}

func (CreateCollectionMsg) Path() string {
	return "nft/create_collection"
}

func (m *CreateCollectionMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	if !IsValidCollectionID(m.ID) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "invalid collection id"))
	}
	errs = errors.Append(errs, errors.Wrap(m.Admin.Validate(), "admin"))
	if len(m.Name) > 128 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "name too long"))
	}
	return errs
}

// MintMsg creates a new token. The collection admin must sign.
type MintMsg struct {
	Metadata   *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Collection string           `protobuf:"bytes,2,opt,name=collection,proto3" json:"collection,omitempty"`
	TokenID    string           `protobuf:"bytes,3,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Owner      bazaar.Address   `protobuf:"bytes,4,opt,name=owner,proto3,casttype=github.com/iov-one/bazaar.Address" json:"owner,omitempty"`
}

func (MintMsg) Path() string {
	return "nft/mint"
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	errs = errors.Append(errs, validateTokenRef(m.Collection, m.TokenID))
	errs = errors.Append(errs, errors.Wrap(m.Owner.Validate(), "owner"))
	return errs
}

// ApproveMsg sets or clears the account approved to transfer a token. The
// token owner must sign. An empty Approved address clears the approval.
type ApproveMsg struct {
	Metadata   *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Collection string           `protobuf:"bytes,2,opt,name=collection,proto3" json:"collection,omitempty"`
	TokenID    string           `protobuf:"bytes,3,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Approved   bazaar.Address   `protobuf:"bytes,4,opt,name=approved,proto3,casttype=github.com/iov-one/bazaar.Address" json:"approved,omitempty"`
}

func (ApproveMsg) Path() string {
	return "nft/approve"
}

func (m *ApproveMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	errs = errors.Append(errs, validateTokenRef(m.Collection, m.TokenID))
	if len(m.Approved) != 0 {
		errs = errors.Append(errs, errors.Wrap(m.Approved.Validate(), "approved"))
	}
	return errs
}

// TransferMsg moves a token to Destination. Either the owner or the
// approved account must sign.
type TransferMsg struct {
	Metadata    *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Collection  string           `protobuf:"bytes,2,opt,name=collection,proto3" json:"collection,omitempty"`
	TokenID     string           `protobuf:"bytes,3,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Destination bazaar.Address   `protobuf:"bytes,4,opt,name=destination,proto3,casttype=github.com/iov-one/bazaar.Address" json:"destination,omitempty"`
}

func (TransferMsg) Path() string {
	return "nft/transfer"
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, m.Metadata.Validate())
	errs = errors.Append(errs, validateTokenRef(m.Collection, m.TokenID))
	errs = errors.Append(errs, errors.Wrap(m.Destination.Validate(), "destination"))
	return errs
}

func validateTokenRef(collection, tokenID string) error {
	var errs error
	if !IsValidCollectionID(collection) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "invalid collection id"))
	}
	if !IsValidTokenID(tokenID) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "invalid token id"))
	}
	return errs
}
