package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/app"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/commands/server"
	"github.com/iov-one/bazaar/crypto"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/exchange"
	"github.com/iov-one/bazaar/x/nft"
	abci "github.com/tendermint/tendermint/abci/types"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
//
// The first argument is the marketplace currency (IOV by default), the
// second one the hex address of the funded account. If no address is given
// a new key is generated and printed out.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %s", ticker)
		}
	}

	var addr bazaar.Address
	if len(args) > 1 {
		var err error
		addr, err = bazaar.ParseAddress(args[1])
		if err != nil {
			return nil, err
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz
		fmt.Println(keys)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"cash": array{
			cash.GenesisAccount{
				Address: addr,
				Coins:   []*coin.Coin{{Whole: 123456789, Ticker: ticker}},
			},
		},
		"nft": nft.Genesis{
			Collections: []nft.GenesisCollection{
				{ID: "genesis", Name: "Genesis collection", Admin: addr},
			},
			Tokens: []nft.GenesisToken{},
		},
		"conf": dict{
			"exchange": exchange.Configuration{
				Metadata: &bazaar.Metadata{Schema: 1},
				Owner:    addr,
				Currency: ticker,
			},
		},
	})
}

// Initializers returns the genesis loaders of every extension.
func Initializers() bazaar.Initializer {
	return app.ChainInitializers(
		&cash.Initializer{},
		&nft.Initializer{},
		&exchange.Initializer{},
	)
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	application, err := Application("bazaard", Stack(), TxDecoder, dbPath, options.Publisher, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	if options.Logger != nil {
		application.WithLogger(options.Logger)
	}
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in a client to use them
func GenerateCoinKey() (bazaar.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(err, "serialize keys")
	}
	return addr, string(keys), nil
}
