package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/crypto"
)

func TestTestGenCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	key := crypto.GenPrivKeyEd25519()
	examples := []Example{
		{Filename: "pub_key", Obj: key.PublicKey()},
		{Filename: "metadata", Obj: &bazaar.Metadata{Schema: 1}},
	}
	require.NoError(t, TestGenCmd(examples, []string{dir}))

	for _, name := range []string{"pub_key", "metadata"} {
		js, err := os.ReadFile(filepath.Join(dir, name+".json"))
		require.NoError(t, err)
		assert.NotEmpty(t, js)

		_, err = os.Stat(filepath.Join(dir, name+".bin"))
		assert.NoError(t, err)
	}

	var got crypto.PublicKey
	pb, err := os.ReadFile(filepath.Join(dir, "pub_key.bin"))
	require.NoError(t, err)
	require.NoError(t, got.Unmarshal(pb))
	assert.Equal(t, key.PublicKey().Address(), got.Address())
}
