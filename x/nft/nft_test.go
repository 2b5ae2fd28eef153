package nft

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestRegistryTransferFrom(t *testing.T) {
	admin := weavetest.NewCondition().Address()
	owner := weavetest.NewCondition().Address()
	spender := weavetest.NewCondition().Address()
	stranger := weavetest.NewCondition().Address()

	cases := map[string]struct {
		approved bazaar.Address
		operator bazaar.Address
		from     bazaar.Address
		to       bazaar.Address
		tokenID  string
		wantErr  *errors.Error
	}{
		"owner transfers": {
			operator: owner,
			from:     owner,
			to:       stranger,
			tokenID:  "1",
		},
		"approved account transfers": {
			approved: spender,
			operator: spender,
			from:     owner,
			to:       spender,
			tokenID:  "1",
		},
		"stranger cannot transfer": {
			approved: spender,
			operator: stranger,
			from:     owner,
			to:       stranger,
			tokenID:  "1",
			wantErr:  errors.ErrUnauthorized,
		},
		"from must be the owner": {
			approved: spender,
			operator: spender,
			from:     stranger,
			to:       spender,
			tokenID:  "1",
			wantErr:  errors.ErrUnauthorized,
		},
		"missing destination": {
			operator: owner,
			from:     owner,
			tokenID:  "1",
			wantErr:  errors.ErrInput,
		},
		"unknown token": {
			operator: owner,
			from:     owner,
			to:       stranger,
			tokenID:  "2",
			wantErr:  errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			r := NewRegistry()
			assert.Nil(t, r.CreateCollection(db, "kitties", "Kitties", admin))
			assert.Nil(t, r.Mint(db, admin, "kitties", "1", owner))
			if tc.approved != nil {
				assert.Nil(t, r.Approve(db, owner, tc.approved, "kitties", "1"))
			}

			err := r.TransferFrom(db, tc.operator, tc.from, tc.to, "kitties", tc.tokenID)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}

			got, err := r.OwnerOf(db, "kitties", "1")
			assert.Nil(t, err)
			assert.Equal(t, tc.to, got)
			approved, err := r.GetApproved(db, "kitties", "1")
			assert.Nil(t, err)
			if approved != nil {
				t.Fatalf("approval not cleared: %s", approved)
			}
		})
	}
}

func TestRegistryMintAndApprove(t *testing.T) {
	db := store.MemStore()
	r := NewRegistry()
	admin := weavetest.NewCondition().Address()
	owner := weavetest.NewCondition().Address()
	other := weavetest.NewCondition().Address()

	assert.Nil(t, r.CreateCollection(db, "kitties", "", admin))
	assert.IsErr(t, errors.ErrDuplicate, r.CreateCollection(db, "kitties", "", admin))
	assert.IsErr(t, errors.ErrInput, r.CreateCollection(db, "No Caps", "", admin))

	assert.IsErr(t, errors.ErrUnauthorized, r.Mint(db, owner, "kitties", "1", owner))
	assert.IsErr(t, errors.ErrNotFound, r.Mint(db, admin, "puppies", "1", owner))
	assert.Nil(t, r.Mint(db, admin, "kitties", "1", owner))
	assert.IsErr(t, errors.ErrDuplicate, r.Mint(db, admin, "kitties", "1", other))

	assert.IsErr(t, errors.ErrUnauthorized, r.Approve(db, other, other, "kitties", "1"))
	assert.IsErr(t, errors.ErrInput, r.Approve(db, owner, owner, "kitties", "1"))
	assert.Nil(t, r.Approve(db, owner, other, "kitties", "1"))
	got, err := r.GetApproved(db, "kitties", "1")
	assert.Nil(t, err)
	assert.Equal(t, other, got)

	// approving nothing clears the approval
	assert.Nil(t, r.Approve(db, owner, nil, "kitties", "1"))
	got, err = r.GetApproved(db, "kitties", "1")
	assert.Nil(t, err)
	if got != nil {
		t.Fatalf("approval not cleared: %s", got)
	}

	assert.Nil(t, r.Mint(db, admin, "kitties", "2", owner))
	tokens, err := r.TokensOf(db, owner)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(tokens))
	tokens, err = r.TokensOf(db, other)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(tokens))
}

func TestHandlers(t *testing.T) {
	admin := weavetest.NewCondition()
	owner := weavetest.NewCondition()
	spender := weavetest.NewCondition()
	meta := &bazaar.Metadata{Schema: 1}

	steps := []struct {
		signer  bazaar.Condition
		msg     bazaar.Msg
		wantErr *errors.Error
	}{
		{
			signer:  owner,
			msg:     &CreateCollectionMsg{Metadata: meta, ID: "kitties", Admin: admin.Address()},
			wantErr: errors.ErrUnauthorized,
		},
		{
			signer: admin,
			msg:    &CreateCollectionMsg{Metadata: meta, ID: "kitties", Admin: admin.Address()},
		},
		{
			signer:  owner,
			msg:     &MintMsg{Metadata: meta, Collection: "kitties", TokenID: "1", Owner: owner.Address()},
			wantErr: errors.ErrUnauthorized,
		},
		{
			signer: admin,
			msg:    &MintMsg{Metadata: meta, Collection: "kitties", TokenID: "1", Owner: owner.Address()},
		},
		{
			signer:  spender,
			msg:     &TransferMsg{Metadata: meta, Collection: "kitties", TokenID: "1", Destination: spender.Address()},
			wantErr: errors.ErrUnauthorized,
		},
		{
			signer:  spender,
			msg:     &ApproveMsg{Metadata: meta, Collection: "kitties", TokenID: "1", Approved: spender.Address()},
			wantErr: errors.ErrUnauthorized,
		},
		{
			signer: owner,
			msg:    &ApproveMsg{Metadata: meta, Collection: "kitties", TokenID: "1", Approved: spender.Address()},
		},
		{
			signer: spender,
			msg:    &TransferMsg{Metadata: meta, Collection: "kitties", TokenID: "1", Destination: spender.Address()},
		},
		{
			signer:  owner,
			msg:     &TransferMsg{Metadata: meta, Collection: "kitties", TokenID: "1", Destination: owner.Address()},
			wantErr: errors.ErrUnauthorized,
		},
		{
			signer:  spender,
			msg:     &TransferMsg{Metadata: meta, Collection: "kitties", TokenID: "no/slash", Destination: owner.Address()},
			wantErr: errors.ErrInput,
		},
	}

	db := store.MemStore()
	registry := NewRegistry()
	rt := &router{handlers: map[string]bazaar.Handler{}}
	auth := &weavetest.CtxAuth{Key: "auth"}
	RegisterRoutes(rt, auth, registry)

	for i, step := range steps {
		ctx := auth.SetConditions(context.Background(), step.signer)
		tx := &weavetest.Tx{Msg: step.msg}
		h, ok := rt.handlers[step.msg.Path()]
		if !ok {
			t.Fatalf("step %d: no handler for %q", i, step.msg.Path())
		}
		if _, err := h.Check(ctx, db, tx); !step.wantErr.Is(err) {
			t.Fatalf("step %d: unexpected check error: %+v", i, err)
		}
		if _, err := h.Deliver(ctx, db, tx); !step.wantErr.Is(err) {
			t.Fatalf("step %d: unexpected deliver error: %+v", i, err)
		}
	}

	got, err := registry.OwnerOf(db, "kitties", "1")
	assert.Nil(t, err)
	assert.Equal(t, spender.Address(), got)
}

type router struct {
	handlers map[string]bazaar.Handler
}

func (r *router) Handle(path string, h bazaar.Handler) {
	r.handlers[path] = h
}

func TestGenesis(t *testing.T) {
	admin := weavetest.NewCondition().Address()
	owner := weavetest.NewCondition().Address()

	raw, err := json.Marshal(map[string]interface{}{
		"nft": Genesis{
			Collections: []GenesisCollection{{ID: "kitties", Name: "Kitties", Admin: admin}},
			Tokens: []GenesisToken{
				{Collection: "kitties", TokenID: "1", Owner: owner},
				{Collection: "kitties", TokenID: "2", Owner: owner},
			},
		},
	})
	assert.Nil(t, err)
	var opts bazaar.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	r := NewRegistry()
	c, err := r.Collection(db, "kitties")
	assert.Nil(t, err)
	assert.Equal(t, admin, c.Admin)
	tokens, err := r.TokensOf(db, owner)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(tokens))

	// tokens of an unknown collection are rejected
	bad := bazaar.Options{"nft": json.RawMessage(`{"tokens": [{"collection": "nope", "token_id": "1"}]}`)}
	assert.IsErr(t, errors.ErrNotFound, ini.FromGenesis(bad, store.MemStore()))
}

func TestQueryByOwner(t *testing.T) {
	db := store.MemStore()
	r := NewRegistry()
	admin := weavetest.NewCondition().Address()
	owner := weavetest.NewCondition().Address()
	assert.Nil(t, r.CreateCollection(db, "kitties", "", admin))
	assert.Nil(t, r.Mint(db, admin, "kitties", "1", owner))

	qr := bazaar.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/nfttokens/owner")
	if h == nil {
		t.Fatal("owner index query not registered")
	}
	models, err := h.Query(db, "", owner)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))

	var tok Token
	assert.Nil(t, tok.Unmarshal(models[0].Value))
	assert.Equal(t, "1", tok.TokenID)

	if qr.Handler("/nftcollections") == nil {
		t.Fatal("collection query not registered")
	}
}
