package exchange

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/gconf"
)

// Initializer fulfils the Initializer interface to load the exchange
// configuration from the genesis file.
type Initializer struct{}

var _ bazaar.Initializer = (*Initializer)(nil)

// FromGenesis stores the configuration found under conf.exchange. A genesis
// file without exchange configuration is rejected.
func (*Initializer) FromGenesis(opts bazaar.Options, db bazaar.KVStore) error {
	var conf Configuration
	return gconf.InitConfig(db, opts, gconfPackage, &conf)
}
