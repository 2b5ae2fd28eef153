package weavetest

import "github.com/iov-one/bazaar"

// Handler is a mock implementation of the bazaar.Handler interface.
//
// Each method call is counted and the configured result returned.
type Handler struct {
	checkCall   int
	CheckResult bazaar.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult bazaar.DeliverResult
	DeliverErr    error
}

var _ bazaar.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes the key, value pair to the store before returning
// the configured error (may be nil). Use it to verify rollback behaviour.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ bazaar.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	db.Set(h.Key, h.Value)
	if h.Err != nil {
		return nil, h.Err
	}
	return &bazaar.CheckResult{}, nil
}

func (h *WriteHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	db.Set(h.Key, h.Value)
	if h.Err != nil {
		return nil, h.Err
	}
	return &bazaar.DeliverResult{}, nil
}
