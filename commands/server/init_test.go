package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

const tendermintGenesis = `{
  "genesis_time": "2019-04-01T10:00:00Z",
  "chain_id": "test-chain-Ab12cD",
  "validators": []
}`

func writeGenesis(t *testing.T, home, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0755))
	path := filepath.Join(home, "config", "genesis.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitCmd(t *testing.T) {
	home, cleanup := tempDir(t)
	defer cleanup()
	logger := log.NewNopLogger()

	var gotArgs []string
	gen := func(args []string) (json.RawMessage, error) {
		gotArgs = args
		return json.RawMessage(`{"cash": []}`), nil
	}

	err := InitCmd(gen, logger, home, nil)
	assert.True(t, errors.ErrNotFound.Is(err))

	path := writeGenesis(t, home, tendermintGenesis)
	require.NoError(t, InitCmd(gen, logger, home, []string{"IOV"}))
	assert.Equal(t, []string{"IOV"}, gotArgs)

	var doc GenesisDoc
	raw, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.JSONEq(t, `{"cash": []}`, string(doc["app_state"]))
	assert.JSONEq(t, `"test-chain-Ab12cD"`, string(doc["chain_id"]))

	err = InitCmd(gen, logger, home, nil)
	assert.True(t, errors.ErrState.Is(err))

	require.NoError(t, InitCmd(gen, logger, home, []string{"-i", "ETH"}))
	assert.Equal(t, []string{"ETH"}, gotArgs)
}

type requireKey string

func (k requireKey) FromGenesis(opts bazaar.Options, db bazaar.KVStore) error {
	if _, ok := opts[string(k)]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s missing", k)
	}
	return nil
}

func TestValidateGenesis(t *testing.T) {
	home, cleanup := tempDir(t)
	defer cleanup()

	err := ValidateGenesis(requireKey("cash"), nil)
	assert.True(t, errors.ErrInput.Is(err))

	path := writeGenesis(t, home, tendermintGenesis)
	err = ValidateGenesis(requireKey("cash"), []string{path})
	assert.True(t, errors.ErrEmpty.Is(err))

	writeGenesis(t, home, `{"app_state": {"nft": {}}}`)
	err = ValidateGenesis(requireKey("cash"), []string{path})
	assert.True(t, errors.ErrNotFound.Is(err))

	writeGenesis(t, home, `{"app_state": {"cash": []}}`)
	assert.NoError(t, ValidateGenesis(requireKey("cash"), []string{path}))
}
