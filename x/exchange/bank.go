package exchange

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/x/cash"
)

// Account returns the address of the exchange. It holds collected payments
// until they are withdrawn and must be approved on every listed token.
func Account() bazaar.Address {
	return bazaar.NewCondition("exchange", "escrow", []byte("proceeds")).Address()
}

// CashBank is a Bank that moves coins through the cash extension. Collected
// payments are held by the given account.
type CashBank struct {
	ctrl    cash.Controller
	account bazaar.Address
}

var _ Bank = CashBank{}

// NewCashBank returns a bank holding collected coins on account.
func NewCashBank(ctrl cash.Controller, account bazaar.Address) CashBank {
	return CashBank{ctrl: ctrl, account: account}
}

func (b CashBank) Collect(db bazaar.KVStore, from bazaar.Address, amount coin.Coin) error {
	return b.ctrl.MoveCoins(db, from, b.account, amount)
}

func (b CashBank) Pay(db bazaar.KVStore, to bazaar.Address, amount coin.Coin) error {
	return b.ctrl.MoveCoins(db, b.account, to, amount)
}
