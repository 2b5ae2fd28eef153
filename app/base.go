package app

import (
	"context"
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/broadcast"
	"github.com/iov-one/bazaar/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// publishTimeout limits how long Commit waits for the publisher.
const publishTimeout = 5 * time.Second

// BaseApp adds DeliverTx and CheckTx handlers to the storage and query
// functionality of StoreApp.
//
// Events returned by successfully delivered transactions are kept until the
// block is committed and only then handed to the publisher.
type BaseApp struct {
	*StoreApp
	decoder   bazaar.TxDecoder
	handler   bazaar.Handler
	publisher broadcast.Publisher
	events    *eventBuffer
	debug     bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application. A nil publisher drops all
// events.
func NewBaseApp(
	store *StoreApp,
	decoder bazaar.TxDecoder,
	handler bazaar.Handler,
	publisher broadcast.Publisher,
	debug bool,
) BaseApp {
	if publisher == nil {
		publisher = broadcast.NopPublisher{}
	}
	return BaseApp{
		StoreApp:  store,
		decoder:   decoder,
		handler:   handler,
		publisher: publisher,
		events:    &eventBuffer{},
		debug:     debug,
	}
}

// DeliverTx - ABCI - dispatches to the handler
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return bazaar.DeliverTxError(err, b.debug)
	}

	ctx := bazaar.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", bazaar.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	if err == nil {
		b.events.add(res.Events...)
	}
	return bazaar.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return bazaar.CheckTxError(err, b.debug)
	}

	ctx := bazaar.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", bazaar.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return bazaar.CheckOrError(res, err, b.debug)
}

// BeginBlock - ABCI
func (b BaseApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	// events of a block that was never committed must not leak
	if dropped := b.events.flush(); len(dropped) != 0 {
		b.Logger().Error("dropping uncommitted events", "count", len(dropped))
	}
	return b.StoreApp.BeginBlock(req)
}

// Commit - ABCI - persists the state and publishes all events collected
// since the previous commit. A publishing failure is logged and does not
// affect the committed state.
func (b BaseApp) Commit() abci.ResponseCommit {
	res := b.StoreApp.Commit()

	events := b.events.flush()
	if len(events) == 0 {
		return res
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := b.publisher.Publish(ctx, events); err != nil {
		b.Logger().Error("cannot publish events",
			"count", len(events),
			"err", err)
	}
	return res
}

// loadTx calls the decoder, and capture any panics
func (b BaseApp) loadTx(txBytes []byte) (tx bazaar.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}

// eventBuffer collects events between two commits. ABCI calls are
// sequential so no locking is needed.
type eventBuffer struct {
	events []bazaar.Event
}

func (e *eventBuffer) add(events ...bazaar.Event) {
	e.events = append(e.events, events...)
}

func (e *eventBuffer) flush() []bazaar.Event {
	events := e.events
	e.events = nil
	return events
}
