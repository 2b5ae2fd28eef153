package app

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/app"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/commands/server"
	"github.com/iov-one/bazaar/crypto"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/exchange"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/iov-one/bazaar/x/sigs"
)

const chainID = "bazaar-test-1"

type recordingPublisher struct {
	batches [][]bazaar.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, events []bazaar.Event) error {
	p.batches = append(p.batches, events)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// chain drives the application one transaction per block and keeps track
// of the signer sequences.
type chain struct {
	t      *testing.T
	app    app.BaseApp
	height int64
	seqs   map[string]int64
}

func newChain(t *testing.T, pub *recordingPublisher, appState string) *chain {
	t.Helper()

	abciApp, err := GenerateApp(&server.Options{
		Logger:    log.NewNopLogger(),
		Publisher: pub,
	})
	require.NoError(t, err)
	myApp := abciApp.(app.BaseApp)

	assert.Equal(t, "", myApp.GetChainID())
	myApp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: []byte(appState)})

	c := &chain{t: t, app: myApp, seqs: make(map[string]int64)}
	c.commit()
	return c
}

func (c *chain) commit() []byte {
	c.height++
	c.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: c.height, ChainID: chainID}})
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	res := c.app.Commit()
	assert.NotEmpty(c.t, res.Data)
	return res.Data
}

// deliver signs msg, runs it through CheckTx and DeliverTx in a new block
// and commits that block.
func (c *chain) deliver(signer *crypto.PrivateKey, msg bazaar.Msg) abci.ResponseDeliverTx {
	c.t.Helper()

	tx, err := NewTx(msg)
	require.NoError(c.t, err)
	addr := signer.PublicKey().Address().String()
	sig, err := sigs.SignTx(signer, tx, chainID, c.seqs[addr])
	require.NoError(c.t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(c.t, err)

	c.height++
	c.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: c.height, ChainID: chainID}})
	chres := c.app.CheckTx(raw)
	require.Equal(c.t, uint32(0), chres.Code, chres.Log)
	dres := c.app.DeliverTx(raw)
	require.Equal(c.t, uint32(0), dres.Code, dres.Log)
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	c.app.Commit()

	c.seqs[addr]++
	return dres
}

func (c *chain) query(path string, key []byte, obj bazaar.Persistent) {
	c.t.Helper()

	qres := c.app.Query(abci.RequestQuery{Path: path, Data: key})
	require.Equal(c.t, uint32(0), qres.Code, "%#v", qres)
	require.NotEmpty(c.t, qres.Value)
	require.NoError(c.t, app.UnmarshalOneResult(qres.Value, obj))
}

func tagValue(tags []common.KVPair, key string) string {
	for _, kv := range tags {
		if string(kv.Key) == key {
			return string(kv.Value)
		}
	}
	return ""
}

func TestMarketplace(t *testing.T) {
	seller := crypto.GenPrivKeyEd25519()
	buyer := crypto.GenPrivKeyEd25519()
	sellerAddr := seller.PublicKey().Address()
	buyerAddr := buyer.PublicKey().Address()

	appState := fmt.Sprintf(`{
		"cash": [
			{"address": "%s", "coins": [{"whole": 10, "ticker": "IOV"}]},
			{"address": "%s", "coins": [{"whole": 500, "ticker": "IOV"}]}
		],
		"conf": {
			"exchange": {
				"metadata": {"schema": 1},
				"owner": "%s",
				"currency": "IOV"
			}
		}
	}`, sellerAddr, buyerAddr, sellerAddr)

	pub := &recordingPublisher{}
	c := newChain(t, pub, appState)

	c.deliver(seller, &nft.CreateCollectionMsg{
		Metadata: &bazaar.Metadata{Schema: 1},
		ID:       "kitties",
		Admin:    sellerAddr,
		Name:     "Kitties",
	})
	c.deliver(seller, &nft.MintMsg{
		Metadata:   &bazaar.Metadata{Schema: 1},
		Collection: "kitties",
		TokenID:    "1",
		Owner:      sellerAddr,
	})
	c.deliver(seller, &nft.ApproveMsg{
		Metadata:   &bazaar.Metadata{Schema: 1},
		Collection: "kitties",
		TokenID:    "1",
		Approved:   exchange.Account(),
	})
	assert.Empty(t, pub.batches, "no marketplace event yet")

	dres := c.deliver(seller, &exchange.ListItemMsg{
		Metadata:   &bazaar.Metadata{Schema: 1},
		Collection: "kitties",
		TokenID:    "1",
		Price:      coin.NewCoinp(150, 0, "IOV"),
	})
	assert.Equal(t, exchange.ListItemMsg{}.Path(), tagValue(dres.Tags, "action"))
	assert.Equal(t, sellerAddr.String(), tagValue(dres.Tags, "seller"))

	var listing exchange.Listing
	c.query("/listings", nft.TokenKey("kitties", "1"), &listing)
	assert.Equal(t, sellerAddr, listing.Seller)
	assert.Equal(t, int64(150), listing.Price.Whole)

	c.deliver(buyer, &exchange.BuyItemMsg{
		Metadata:   &bazaar.Metadata{Schema: 1},
		Collection: "kitties",
		TokenID:    "1",
		Payment:    coin.NewCoinp(150, 0, "IOV"),
	})

	var token nft.Token
	c.query("/nfttokens", nft.TokenKey("kitties", "1"), &token)
	assert.Equal(t, buyerAddr, token.Owner)
	assert.Empty(t, token.Approved)

	var proceeds exchange.Proceeds
	c.query("/proceeds", sellerAddr, &proceeds)
	require.Equal(t, 1, len(proceeds.Coins))
	assert.Equal(t, int64(150), proceeds.Coins[0].Whole)

	c.deliver(seller, &exchange.WithdrawProceedsMsg{
		Metadata: &bazaar.Metadata{Schema: 1},
	})

	var wallet cash.Set
	c.query("/", cash.NewBucket().DBKey(sellerAddr), &wallet)
	require.Equal(t, 1, len(wallet.Coins))
	assert.Equal(t, int64(160), wallet.Coins[0].Whole)

	c.query("/wallets", buyerAddr, &wallet)
	require.Equal(t, 1, len(wallet.Coins))
	assert.Equal(t, int64(350), wallet.Coins[0].Whole)

	// every marketplace block published exactly its own event
	wantKinds := []string{
		exchange.EventListingCreated,
		exchange.EventItemPurchased,
		exchange.EventProceedsWithdrawn,
	}
	require.Equal(t, len(wantKinds), len(pub.batches))
	for i, kind := range wantKinds {
		require.Equal(t, 1, len(pub.batches[i]))
		assert.Equal(t, kind, pub.batches[i][0].Kind)
	}

	assert.Equal(t, nft.TokenKey("kitties", "1"), pub.batches[1][0].Key)
	assert.Equal(t, []byte(sellerAddr), pub.batches[2][0].Key)

	var purchase exchange.PurchaseEvent
	require.NoError(t, json.Unmarshal(pub.batches[1][0].Payload, &purchase))
	assert.Equal(t, buyerAddr, purchase.Buyer)
	assert.Equal(t, sellerAddr, purchase.Seller)
	assert.Equal(t, "kitties", purchase.Collection)
}

func TestFailedTxPublishesNothing(t *testing.T) {
	seller := crypto.GenPrivKeyEd25519()
	sellerAddr := seller.PublicKey().Address()

	appState := fmt.Sprintf(`{
		"cash": [{"address": "%s", "coins": [{"whole": 10, "ticker": "IOV"}]}],
		"conf": {"exchange": {"metadata": {"schema": 1}, "owner": "%s", "currency": "IOV"}}
	}`, sellerAddr, sellerAddr)

	pub := &recordingPublisher{}
	c := newChain(t, pub, appState)

	tx, err := NewTx(&exchange.ListItemMsg{
		Metadata:   &bazaar.Metadata{Schema: 1},
		Collection: "kitties",
		TokenID:    "1",
		Price:      coin.NewCoinp(5, 0, "IOV"),
	})
	require.NoError(t, err)
	sig, err := sigs.SignTx(seller, tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(t, err)

	c.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 2, ChainID: chainID}})
	dres := c.app.DeliverTx(raw)
	assert.NotEqual(t, uint32(0), dres.Code, "listing a token that does not exist")
	c.app.EndBlock(abci.RequestEndBlock{Height: 2})
	c.app.Commit()

	assert.Empty(t, pub.batches)
}

func TestTxMessage(t *testing.T) {
	msg := &exchange.WithdrawProceedsMsg{Metadata: &bazaar.Metadata{Schema: 1}}
	tx, err := NewTx(msg)
	require.NoError(t, err)

	raw, err := tx.Marshal()
	require.NoError(t, err)
	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	got, err := decoded.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, msg.Path(), got.Path())

	// two messages in one transaction are rejected
	tx.Sum.SendMsg = &cash.SendMsg{}
	_, err = tx.GetMsg()
	assert.Error(t, err)

	_, err = NewTx(nil)
	assert.Error(t, err)

	_, err = TxDecoder([]byte("not a transaction"))
	assert.Error(t, err)
}
