package orm

import (
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestMultiRef(t *testing.T) {
	m, err := NewMultiRef([]byte("c"), []byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("c")}, m.Refs)

	assert.Nil(t, m.Add([]byte("b")))
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, m.Refs)
	assert.IsErr(t, errors.ErrDuplicate, m.Add([]byte("a")))

	cpy := m.Copy().(*MultiRef)
	assert.Nil(t, m.Remove([]byte("a")))
	assert.IsErr(t, errors.ErrNotFound, m.Remove([]byte("a")))
	assert.Equal(t, 3, len(cpy.Refs))

	raw, err := m.Marshal()
	assert.Nil(t, err)
	var back MultiRef
	assert.Nil(t, back.Unmarshal(raw))
	assert.Equal(t, m.Refs, back.Refs)

	assert.Nil(t, m.Remove([]byte("b")))
	assert.Nil(t, m.Remove([]byte("c")))
	assert.IsErr(t, errors.ErrEmpty, m.Validate())

	_, err = NewMultiRef([]byte("a"), []byte("a"))
	assert.IsErr(t, errors.ErrDuplicate, err)
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix []byte
		end    []byte
	}{
		"empty":         {prefix: nil, end: nil},
		"simple":        {prefix: []byte("abc"), end: []byte("abd")},
		"trailing 0xFF": {prefix: []byte{0x01, 0xFF}, end: []byte{0x02}},
		"all 0xFF":      {prefix: []byte{0xFF, 0xFF}, end: nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.prefix, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
