package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use bazaar.Address, so address in hex, not base64
type GenesisAccount struct {
	Address bazaar.Address `json:"address"`
	Coins   []*coin.Coin   `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ bazaar.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts bazaar.Options, kv bazaar.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		wallet, err := WalletWith(acct.Address, acct.Coins...)
		if err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := bucket.Save(kv, wallet); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
