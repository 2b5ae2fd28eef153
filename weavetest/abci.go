package weavetest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Tester is implemented by both *testing.T and *testing.B. Use it instead of
// the pointer type to allow notation to accept both objects.
type Tester interface {
	Helper()
	Errorf(string, ...interface{})
	Fatalf(string, ...interface{})
	Logf(string, ...interface{})
}

// WeaveRunner provides a translation layer between an ABCI interface and a
// bazaar application. It takes care of serializing messages and creating
// blocks.
type WeaveRunner struct {
	chainID string
	height  int64
	t       Tester
	app     abci.Application
}

// NewWeaveRunner creates a WeaveRunner instance that can be used to process
// deliver and check transaction requests using the bazaar API.
func NewWeaveRunner(t Tester, app abci.Application, chainID string) *WeaveRunner {
	return &WeaveRunner{
		chainID: chainID,
		height:  0,
		t:       t,
		app:     app,
	}
}

// WeaveApp is the minimal interface exposed to the function executed inside
// of a block.
type WeaveApp interface {
	DeliverTx(bazaar.Tx) error
	CheckTx(bazaar.Tx) error
}

var _ WeaveApp = (*WeaveRunner)(nil)

// InitChain serialize to JSON given genesis and loads it. Loading a genesis is
// causing a block creation.
func (w *WeaveRunner) InitChain(genesis interface{}) {
	w.t.Helper()

	raw, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		w.t.Fatalf("cannot JSON serialize genesis: %s", err)
	}

	changed := w.InBlock(func(WeaveApp) error {
		w.app.InitChain(abci.RequestInitChain{
			Time:          time.Now(),
			ChainId:       w.chainID,
			AppStateBytes: raw,
		})
		return nil
	})

	if !changed {
		w.t.Fatalf("genesis did not change the state")
	}
}

// CheckTx translates given transaction into ABCI interface and executes.
// A failed response is converted back into an error of the registered kind.
func (w *WeaveRunner) CheckTx(tx bazaar.Tx) error {
	raw, err := tx.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal transaction")
	}
	resp := w.app.CheckTx(raw)
	if resp.Code != errors.SuccessABCICode {
		return errors.ABCIError(resp.Code, resp.Log)
	}
	return nil
}

// DeliverTx translates given transaction into ABCI interface and executes.
// A failed response is converted back into an error of the registered kind.
func (w *WeaveRunner) DeliverTx(tx bazaar.Tx) error {
	raw, err := tx.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal transaction")
	}
	_, err = bazaar.ParseDeliverOrError(w.app.DeliverTx(raw))
	return err
}

// InBlock begins a block and runs given function. All transactions executed
// withing given function are part of newly created block. Upon success the
// block is finished and changes committed.
// InBlock returns true if the application state was modified.
//
// Any failure is ending the test instantly.
func (w *WeaveRunner) InBlock(executeTx func(WeaveApp) error) bool {
	w.t.Helper()

	w.height++

	initialHash := w.app.Info(abci.RequestInfo{}).LastBlockAppHash

	w.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: w.chainID,
			Height:  w.height,
			Time:    time.Now(),
		},
	})

	if err := executeTx(w); err != nil {
		w.t.Fatalf("operation failed with %+v", err)
	}

	w.app.EndBlock(abci.RequestEndBlock{
		Height: w.height,
	})

	finalHash := w.app.Commit().Data
	return !bytes.Equal(initialHash, finalHash)
}

// Query executes an ABCI query against the latest committed state.
func (w *WeaveRunner) Query(path string, data []byte) abci.ResponseQuery {
	return w.app.Query(abci.RequestQuery{
		Path: path,
		Data: data,
	})
}
