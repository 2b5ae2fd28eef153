package cash

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestMoveCoins(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	cases := map[string]struct {
		fund       []*coin.Coin
		amount     coin.Coin
		wantErr    *errors.Error
		wantAlice  coin.Coin
		wantBob    coin.Coin
		bobMissing bool
	}{
		"full transfer": {
			fund:      []*coin.Coin{coin.NewCoinp(100, 0, "IOV")},
			amount:    coin.NewCoin(100, 0, "IOV"),
			wantAlice: coin.NewCoin(0, 0, "IOV"),
			wantBob:   coin.NewCoin(100, 0, "IOV"),
		},
		"partial transfer": {
			fund:      []*coin.Coin{coin.NewCoinp(100, 0, "IOV")},
			amount:    coin.NewCoin(30, 500, "IOV"),
			wantAlice: coin.NewCoin(69, 999999500, "IOV"),
			wantBob:   coin.NewCoin(30, 500, "IOV"),
		},
		"insufficient funds": {
			fund:       []*coin.Coin{coin.NewCoinp(10, 0, "IOV")},
			amount:     coin.NewCoin(11, 0, "IOV"),
			wantErr:    errors.ErrInsufficientAmount,
			wantAlice:  coin.NewCoin(10, 0, "IOV"),
			bobMissing: true,
		},
		"wrong currency": {
			fund:       []*coin.Coin{coin.NewCoinp(10, 0, "IOV")},
			amount:     coin.NewCoin(1, 0, "ETH"),
			wantErr:    errors.ErrInsufficientAmount,
			wantAlice:  coin.NewCoin(10, 0, "IOV"),
			bobMissing: true,
		},
		"zero amount": {
			fund:       []*coin.Coin{coin.NewCoinp(10, 0, "IOV")},
			amount:     coin.NewCoin(0, 0, "IOV"),
			wantErr:    errors.ErrAmount,
			wantAlice:  coin.NewCoin(10, 0, "IOV"),
			bobMissing: true,
		},
		"no sender wallet": {
			amount:     coin.NewCoin(1, 0, "IOV"),
			wantErr:    errors.ErrEmpty,
			bobMissing: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			bucket := NewBucket()
			ctrl := NewController(bucket)

			if tc.fund != nil {
				w, err := WalletWith(alice, tc.fund...)
				assert.Nil(t, err)
				assert.Nil(t, bucket.Save(db, w))
			}

			err := ctrl.MoveCoins(db, alice, bob, tc.amount)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}

			if tc.fund != nil {
				got, err := ctrl.Balance(db, alice)
				assert.Nil(t, err)
				if b := got.Balance("IOV"); !b.Equals(tc.wantAlice) {
					t.Fatalf("want alice balance %v, got %v", tc.wantAlice, b)
				}
			}
			got, err := ctrl.Balance(db, bob)
			if tc.bobMissing {
				assert.IsErr(t, errors.ErrNotFound, err)
				return
			}
			assert.Nil(t, err)
			if b := got.Balance("IOV"); !b.Equals(tc.wantBob) {
				t.Fatalf("want bob balance %v, got %v", tc.wantBob, b)
			}
		})
	}
}

func TestMoveCoinsToSelf(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()
	ctrl := NewController(bucket)
	alice := weavetest.NewCondition().Address()

	assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(5, 0, "IOV")))
	assert.Nil(t, ctrl.MoveCoins(db, alice, alice, coin.NewCoin(5, 0, "IOV")))

	got, err := ctrl.Balance(db, alice)
	assert.Nil(t, err)
	if b := got.Balance("IOV"); !b.Equals(coin.NewCoin(5, 0, "IOV")) {
		t.Fatalf("self transfer changed balance: %v", b)
	}
}

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	addr := weavetest.NewCondition().Address()

	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewCoin(3, 0, "IOV")))
	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewCoin(2, 0, "ETH")))
	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewCoin(-1, 0, "IOV")))

	got, err := ctrl.Balance(db, addr)
	assert.Nil(t, err)
	want, err := coin.CombineCoins(coin.NewCoin(2, 0, "IOV"), coin.NewCoin(2, 0, "ETH"))
	assert.Nil(t, err)
	if !got.Equals(want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	err = ctrl.IssueCoins(db, addr, coin.NewCoin(1, 0, "bad ticker"))
	assert.IsErr(t, errors.ErrCurrency, err)
}

func TestSendHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	cases := map[string]struct {
		signer    bazaar.Condition
		msg       bazaar.Msg
		wantCheck *errors.Error
		wantErr   *errors.Error
	}{
		"valid send": {
			signer: alice,
			msg: &SendMsg{
				Metadata:    &bazaar.Metadata{Schema: 1},
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      coin.NewCoinp(4, 0, "IOV"),
				Memo:        "rent",
			},
		},
		"not signed by source": {
			signer: bob,
			msg: &SendMsg{
				Metadata:    &bazaar.Metadata{Schema: 1},
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      coin.NewCoinp(4, 0, "IOV"),
			},
			wantCheck: errors.ErrUnauthorized,
			wantErr:   errors.ErrUnauthorized,
		},
		"negative amount": {
			signer: alice,
			msg: &SendMsg{
				Metadata:    &bazaar.Metadata{Schema: 1},
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      coin.NewCoinp(-4, 0, "IOV"),
			},
			wantCheck: errors.ErrAmount,
			wantErr:   errors.ErrAmount,
		},
		"missing metadata": {
			signer: alice,
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      coin.NewCoinp(4, 0, "IOV"),
			},
			wantCheck: errors.ErrMetadata,
			wantErr:   errors.ErrMetadata,
		},
		"too much": {
			signer: alice,
			msg: &SendMsg{
				Metadata:    &bazaar.Metadata{Schema: 1},
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      coin.NewCoinp(11, 0, "IOV"),
			},
			wantErr: errors.ErrInsufficientAmount,
		},
		"wrong message type": {
			signer:    alice,
			msg:       &weavetest.Msg{RoutePath: "cash/send"},
			wantCheck: errors.ErrType,
			wantErr:   errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewBucket())
			assert.Nil(t, ctrl.IssueCoins(db, alice.Address(), coin.NewCoin(10, 0, "IOV")))

			auth := &weavetest.Auth{Signer: tc.signer}
			rt := &router{handlers: map[string]bazaar.Handler{}}
			RegisterRoutes(rt, auth, ctrl)
			h := rt.handlers["cash/send"]

			tx := &weavetest.Tx{Msg: tc.msg}
			ctx := context.Background()
			if _, err := h.Check(ctx, db, tx); !tc.wantCheck.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			if _, err := h.Deliver(ctx, db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			got, err := ctrl.Balance(db, bob.Address())
			assert.Nil(t, err)
			assert.Equal(t, coin.NewCoin(4, 0, "IOV"), got.Balance("IOV"))
		})
	}
}

type router struct {
	handlers map[string]bazaar.Handler
}

func (r *router) Handle(path string, h bazaar.Handler) {
	r.handlers[path] = h
}

func TestGenesis(t *testing.T) {
	const genesis = `{
		"cash": [
			{
				"address": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
				"coins": [
					{"whole": 50000, "ticker": "ALX"},
					{"whole": 1234, "ticker": "IOV"}
				]
			}
		]
	}`
	var opts bazaar.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	addr := weavetest.ParseAddress(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0")
	got, err := NewController(NewBucket()).Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(50000, 0, "ALX"), got.Balance("ALX"))
	assert.Equal(t, coin.NewCoin(1234, 0, "IOV"), got.Balance("IOV"))

	// missing key is not an error
	assert.Nil(t, ini.FromGenesis(bazaar.Options{}, store.MemStore()))
}

func TestSetCopy(t *testing.T) {
	w, err := WalletWith(weavetest.NewCondition().Address(), coin.NewCoinp(1, 0, "IOV"))
	assert.Nil(t, err)
	orig := AsSet(w)
	cpy := orig.Copy().(*Set)
	assert.Nil(t, cpy.Add(coin.NewCoin(1, 0, "IOV")))

	if b := coin.Coins(orig.Coins).Balance("IOV"); !b.Equals(coin.NewCoin(1, 0, "IOV")) {
		t.Fatalf("copy modified the original: %v", b)
	}
	assert.Nil(t, cpy.Validate())
}
