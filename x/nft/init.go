package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

const optKey = "nft"

// Genesis is the content of the "nft" key of the genesis file.
type Genesis struct {
	Collections []GenesisCollection `json:"collections"`
	Tokens      []GenesisToken      `json:"tokens"`
}

type GenesisCollection struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Admin bazaar.Address `json:"admin"`
}

type GenesisToken struct {
	Collection string         `json:"collection"`
	TokenID    string         `json:"token_id"`
	Owner      bazaar.Address `json:"owner"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ bazaar.Initializer = (*Initializer)(nil)

// FromGenesis creates all collections first and then mints the tokens on
// behalf of each collection admin.
func (*Initializer) FromGenesis(opts bazaar.Options, db bazaar.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	r := NewRegistry()
	for i, c := range gen.Collections {
		if err := r.CreateCollection(db, c.ID, c.Name, c.Admin); err != nil {
			return errors.Wrapf(err, "collection #%d", i)
		}
	}
	for i, t := range gen.Tokens {
		c, err := r.Collection(db, t.Collection)
		if err != nil {
			return errors.Wrapf(err, "token #%d", i)
		}
		if err := r.Mint(db, c.Admin, t.Collection, t.TokenID, t.Owner); err != nil {
			return errors.Wrapf(err, "token #%d", i)
		}
	}
	return nil
}
