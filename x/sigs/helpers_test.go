package sigs

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/weavetest"
)

// StdTx is a minimal signed transaction carrying a raw message.
type StdTx struct {
	Msg        *weavetest.Msg
	Signatures []*StdSignature
}

var (
	_ bazaar.Tx = (*StdTx)(nil)
	_ SignedTx  = (*StdTx)(nil)
)

// NewStdTx creates a transaction whose message serializes to payload.
func NewStdTx(payload []byte) *StdTx {
	return &StdTx{
		Msg: &weavetest.Msg{RoutePath: "test/raw", Serialized: payload},
	}
}

func (tx *StdTx) GetMsg() (bazaar.Msg, error) {
	return tx.Msg, nil
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	return tx.Msg.Marshal()
}

func (tx *StdTx) Marshal() ([]byte, error) {
	return tx.Msg.Marshal()
}

func (tx *StdTx) Unmarshal(raw []byte) error {
	return tx.Msg.Unmarshal(raw)
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []bazaar.Condition
}

var _ bazaar.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx bazaar.Context, store bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &bazaar.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx bazaar.Context, store bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &bazaar.DeliverResult{}, nil
}
