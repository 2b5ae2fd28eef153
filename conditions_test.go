package bazaar_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("test hexadecimal address printing", t, func() {
		b := []byte("ABCD123456LHB")
		addr := bazaar.Address(b)

		So(addr.String(), ShouldNotEqual, fmt.Sprintf("%X", addr))
		So(addr.String(), ShouldEqual, strings.ToUpper(fmt.Sprintf("%x", b)))
	})

	Convey("test hexadecimal condition printing", t, func() {
		cond := bazaar.NewCondition("12", "32", []byte("ABCD123456LHB"))

		So(cond.String(), ShouldNotEqual, fmt.Sprintf("%X", cond))
	})

	Convey("test empty address printing", t, func() {
		So(bazaar.Address(nil).String(), ShouldEqual, "(nil)")
	})
}

func TestConditionParse(t *testing.T) {
	Convey("a condition is split into its sections", t, func() {
		cond := bazaar.NewCondition("exchange", "escrow", []byte("proceeds"))
		ext, typ, data, err := cond.Parse()
		So(err, ShouldBeNil)
		So(ext, ShouldEqual, "exchange")
		So(typ, ShouldEqual, "escrow")
		So(string(data), ShouldEqual, "proceeds")
		So(cond.Validate(), ShouldBeNil)
		So(cond.Address().Validate(), ShouldBeNil)
	})

	Convey("invalid conditions are rejected", t, func() {
		for _, raw := range []string{"", "no/data", "to/short/type", "a/bcd/efg"} {
			cond := bazaar.Condition(raw)
			So(errors.ErrInput.Is(cond.Validate()), ShouldBeTrue)
			_, _, _, err := cond.Parse()
			So(errors.ErrInput.Is(err), ShouldBeTrue)
		}
	})
}

func TestAddressUnmarshalJSON(t *testing.T) {
	addr := bazaar.NewCondition("foo", "bar", []byte("conditiondata")).Address()
	hexAddr := strings.ToUpper(fmt.Sprintf("%x", []byte(addr)))
	bech, err := addr.Bech32("tiov")
	require.NoError(t, err)

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr bazaar.Address
	}{
		"default decoding": {
			json:     `"` + hexAddr + `"`,
			wantAddr: addr,
		},
		"hex decoding": {
			json:     `"hex:` + hexAddr + `"`,
			wantAddr: addr,
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: addr,
		},
		"bech32 decoding": {
			json:     `"bech32:` + bech + `"`,
			wantAddr: addr,
		},
		"invalid address length": {
			json:    `"6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
		"zero cond address": {
			json:     `"cond:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a bazaar.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !reflect.DeepEqual(a, tc.wantAddr) {
				t.Fatalf("got address: %q", a)
			}
		})
	}
}

func TestAddressJSONRoundTrip(t *testing.T) {
	addr := bazaar.NewCondition("sigs", "ed25519", []byte{1, 2, 3}).Address()

	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var got bazaar.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got)
}

func TestConditionUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json          string
		wantErr       *errors.Error
		wantCondition bazaar.Condition
	}{
		"default decoding": {
			json:          `"foo/bar/636f6e646974696f6e64617461"`,
			wantCondition: bazaar.NewCondition("foo", "bar", []byte("conditiondata")),
		},
		"invalid condition format": {
			json:    `"foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"zero address": {
			json:          `""`,
			wantCondition: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got bazaar.Condition
			err := json.Unmarshal([]byte(tc.json), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !got.Equals(tc.wantCondition) {
				t.Fatalf("expected %q but got condition: %q", tc.wantCondition, got)
			}
		})
	}
}

func TestConditionMarshalJSON(t *testing.T) {
	cond := bazaar.NewCondition("foo", "bar", []byte("conditiondata"))
	raw, err := json.Marshal(cond)
	require.NoError(t, err)
	assert.Equal(t, `"foo/bar/636F6E646974696F6E64617461"`, string(raw))

	raw, err = json.Marshal(bazaar.Condition(nil))
	require.NoError(t, err)
	assert.Equal(t, `""`, string(raw))
}
