package sigs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/crypto"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
)

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(SigCheckHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := bazaar.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	perms := []bazaar.Condition{priv.PublicKey().Condition()}

	bz := []byte("art")
	tx := NewStdTx(bz)
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	deliver := func(dec bazaar.Decorator, my bazaar.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec bazaar.Decorator, my bazaar.Tx) error {
		_, err := dec.Check(ctx, checkKv, my, signers)
		return err
	}

	for i, fn := range []func(bazaar.Decorator, bazaar.Tx) error{check, deliver} {
		// test with no sigs
		tx.Signatures = nil
		err := fn(d, tx)
		assert.True(t, errors.ErrUnauthorized.Is(err), "%d", i)

		// test with one
		tx.Signatures = []*StdSignature{sig}
		err = fn(d, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)

		// test with replay
		err = fn(d, tx)
		assert.True(t, ErrInvalidSequence.Is(err), "%d", i)

		// test allowing none
		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, []bazaar.Condition{}, signers.Signers)

		// test allowing, with next sequence
		tx.Signatures = []*StdSignature{sig1}
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)
	}
}

func TestDecoratorChargesGas(t *testing.T) {
	kv := store.MemStore()
	chainID := "gas-station"
	ctx := bazaar.WithChainID(context.Background(), chainID)

	tx := NewStdTx([]byte("payload"))
	for i := 0; i < 2; i++ {
		sig, err := SignTx(crypto.GenPrivKeyEd25519(), tx, chainID, 0)
		require.NoError(t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}

	res, err := NewDecorator().Check(ctx, kv, tx, new(SigCheckHandler))
	require.NoError(t, err)
	assert.Equal(t, int64(2*signatureVerifyCost), res.GasAllocated)
}

func TestDecoratorIgnoresUnsignedTxTypes(t *testing.T) {
	kv := store.MemStore()
	ctx := bazaar.WithChainID(context.Background(), "plain-chain")
	signers := new(SigCheckHandler)

	_, err := NewDecorator().Deliver(ctx, kv, &plainTx{}, signers)
	require.NoError(t, err)
	assert.Empty(t, signers.Signers)
}

type plainTx struct{}

func (plainTx) GetMsg() (bazaar.Msg, error) { return nil, nil }
func (plainTx) Marshal() ([]byte, error)    { return nil, nil }
func (*plainTx) Unmarshal(raw []byte) error { return nil }
