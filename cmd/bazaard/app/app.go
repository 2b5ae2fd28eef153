/*
Package app links together all the various components
to construct the bazaard application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/app"
	"github.com/iov-one/bazaar/broadcast"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	"github.com/iov-one/bazaar/store/iavl"
	"github.com/iov-one/bazaar/x"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/exchange"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/iov-one/bazaar/x/sigs"
	"github.com/iov-one/bazaar/x/utils"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// CashControl returns a controller for cash functions
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Ledger returns the exchange ledger settling payments through cash.
func Ledger(registry *nft.Registry, ctrl cash.Controller) *exchange.Ledger {
	account := exchange.Account()
	return exchange.NewLedger(registry, exchange.NewCashBank(ctrl, account), account)
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		sigs.NewDecorator(),
		utils.NewActionTagger(),
		// on DeliverTx, bad tx will increment nonce even if the
		// message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to cash, nft and exchange messages.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	ctrl := CashControl()
	registry := nft.NewRegistry()
	cash.RegisterRoutes(r, authFn, ctrl)
	nft.RegisterRoutes(r, authFn, registry)
	exchange.RegisterRoutes(r, authFn, Ledger(registry, ctrl))
	return r
}

// QueryRouter returns a default query router, allowing access to
// "/wallets", "/auth", "/nftcollections", "/nfttokens", "/listings",
// "/proceeds" and "/"
func QueryRouter() bazaar.QueryRouter {
	r := bazaar.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		nft.RegisterQuery,
		exchange.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() bazaar.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h bazaar.Handler,
	tx bazaar.TxDecoder, dbPath string, publisher broadcast.Publisher, debug bool) (app.BaseApp, error) {

	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	return app.NewBaseApp(store, tx, h, publisher, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (bazaar.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}
