package app

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/commands"
	"github.com/iov-one/bazaar/crypto"
	"github.com/iov-one/bazaar/x/exchange"
	"github.com/iov-one/bazaar/x/sigs"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	seller := pub.Address()

	listing := &exchange.Listing{
		Metadata:   &bazaar.Metadata{Schema: 1},
		Collection: "kitties",
		TokenID:    "1",
		Seller:     seller,
		Price:      coin.NewCoinp(150, 0, "IOV"),
	}

	list := &exchange.ListItemMsg{
		Metadata:   &bazaar.Metadata{Schema: 1},
		Collection: "kitties",
		TokenID:    "1",
		Price:      coin.NewCoinp(150, 0, "IOV"),
	}
	buy := &exchange.BuyItemMsg{
		Metadata:   &bazaar.Metadata{Schema: 1},
		Collection: "kitties",
		TokenID:    "1",
		Payment:    coin.NewCoinp(150, 0, "IOV"),
	}

	unsigned := Tx{Sum: &TxMsg{ListItemMsg: list}}
	tx := unsigned
	sig, err := sigs.SignTx(priv, &tx, "bazaar-test", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "priv_key", Obj: priv},
		{Filename: "pub_key", Obj: pub},
		{Filename: "listing", Obj: listing},
		{Filename: "list_item_msg", Obj: list},
		{Filename: "buy_item_msg", Obj: buy},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
