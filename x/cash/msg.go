package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
	maxRefSize  int = 64
)

// SendMsg moves Amount from Source to Destination.
type SendMsg struct {
	Metadata    *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      bazaar.Address   `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/iov-one/bazaar.Address" json:"source,omitempty"`
	Destination bazaar.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/bazaar.Address" json:"destination,omitempty"`
	Amount      *coin.Coin       `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	// max length 128 character
	Memo string `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
	// max length 64 bytes
	Ref []byte `protobuf:"bytes,6,opt,name=ref,proto3" json:"ref,omitempty"`
}

// Ensure we implement the Msg interface
var _ bazaar.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	var err error
	err = errors.Append(err, s.Metadata.Validate())
	if coin.IsEmpty(s.Amount) || !s.Amount.IsPositive() {
		err = errors.Append(err, errors.Wrapf(errors.ErrAmount, "non-positive SendMsg: %v", s.Amount))
	} else {
		err = errors.Append(err, errors.Wrap(s.Amount.Validate(), "amount"))
	}
	err = errors.Append(err, errors.Wrap(s.Source.Validate(), "source"))
	err = errors.Append(err, errors.Wrap(s.Destination.Validate(), "destination"))
	if len(s.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "memo too long"))
	}
	if len(s.Ref) > maxRefSize {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "ref too long"))
	}
	return err
}
