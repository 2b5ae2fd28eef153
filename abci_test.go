package bazaar

import (
	"fmt"
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/common"
)

func TestDeliverOrError(t *testing.T) {
	res := &DeliverResult{
		Data: []byte("id"),
		Log:  "ok",
		Tags: []common.KVPair{{Key: []byte("action"), Value: []byte("list")}},
	}
	resp := DeliverOrError(res, nil, false)
	assert.Equal(t, uint32(errors.SuccessABCICode), resp.Code)
	assert.Equal(t, []byte("id"), resp.Data)
	assert.Len(t, resp.Tags, 1)

	resp = DeliverOrError(nil, errors.Wrap(errors.ErrNotFound, "listing"), false)
	assert.Equal(t, errors.ErrNotFound.ABCICode(), resp.Code)
	assert.Equal(t, "cannot deliver tx: listing: not found", resp.Log)

	// internal errors are hidden unless running in debug mode
	resp = DeliverOrError(nil, fmt.Errorf("disk on fire"), false)
	assert.Equal(t, uint32(1), resp.Code)
	assert.Equal(t, "cannot deliver tx: internal error", resp.Log)
	resp = DeliverOrError(nil, fmt.Errorf("disk on fire"), true)
	assert.Contains(t, resp.Log, "disk on fire")
}

func TestCheckOrError(t *testing.T) {
	resp := CheckOrError(NewCheck(12, "fine"), nil, false)
	assert.Equal(t, uint32(errors.SuccessABCICode), resp.Code)
	assert.Equal(t, int64(12), resp.GasWanted)

	resp = CheckOrError(nil, errors.ErrUnauthorized, false)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), resp.Code)
}

func TestParseDeliverOrError(t *testing.T) {
	resp := DeliverTxError(errors.Wrap(errors.ErrAmount, "price"), false)
	_, err := ParseDeliverOrError(resp)
	assert.True(t, errors.ErrAmount.Is(err))

	res, err := ParseDeliverOrError(DeliverOrError(&DeliverResult{Log: "yes"}, nil, false))
	assert.NoError(t, err)
	assert.Equal(t, "yes", res.Log)
}
