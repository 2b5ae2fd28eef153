package coin

import (
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestCombineCoins(t *testing.T) {
	cases := map[string]struct {
		input   []Coin
		want    Coins
		wantErr *errors.Error
	}{
		"empty": {
			input: nil,
			want:  nil,
		},
		"sorted and merged": {
			input: []Coin{NewCoin(1, 0, "IOV"), NewCoin(2, 0, "ETH"), NewCoin(3, 0, "IOV")},
			want:  Coins{NewCoinp(2, 0, "ETH"), NewCoinp(4, 0, "IOV")},
		},
		"zero values are dropped": {
			input: []Coin{NewCoin(1, 0, "IOV"), NewCoin(-1, 0, "IOV"), NewCoin(0, 0, "ETH")},
			want:  nil,
		},
		"invalid ticker": {
			input:   []Coin{NewCoin(1, 0, "io")},
			wantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := CombineCoins(tc.input...)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil && !got.Equals(tc.want) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCoinsAddDoesNotModifyReceiver(t *testing.T) {
	base, err := CombineCoins(NewCoin(5, 0, "IOV"))
	assert.Nil(t, err)

	more, err := base.Add(NewCoin(1, 0, "IOV"))
	assert.Nil(t, err)
	assert.Equal(t, NewCoin(5, 0, "IOV"), base.Balance("IOV"))
	assert.Equal(t, NewCoin(6, 0, "IOV"), more.Balance("IOV"))

	same, err := base.Add(NewCoin(0, 0, "IOV"))
	assert.Nil(t, err)
	assert.Equal(t, true, same.Equals(base))
}

func TestCoinsContains(t *testing.T) {
	set, err := CombineCoins(NewCoin(10, 0, "IOV"), NewCoin(1, 5, "ETH"))
	assert.Nil(t, err)

	assert.Equal(t, true, set.Contains(NewCoin(10, 0, "IOV")))
	assert.Equal(t, true, set.Contains(NewCoin(1, 0, "ETH")))
	assert.Equal(t, false, set.Contains(NewCoin(10, 1, "IOV")))
	assert.Equal(t, false, set.Contains(NewCoin(1, 0, "BTC")))
	assert.Equal(t, NewCoin(0, 0, "BTC"), set.Balance("BTC"))
}

func TestCoinsSubtract(t *testing.T) {
	set, err := CombineCoins(NewCoin(10, 0, "IOV"))
	assert.Nil(t, err)

	left, err := set.Subtract(NewCoin(10, 0, "IOV"))
	assert.Nil(t, err)
	assert.Equal(t, true, left.IsEmpty())

	neg, err := set.Subtract(NewCoin(11, 0, "IOV"))
	assert.Nil(t, err)
	assert.Equal(t, false, neg.IsPositive())
}

func TestCoinsValidate(t *testing.T) {
	unsorted := Coins{NewCoinp(1, 0, "IOV"), NewCoinp(1, 0, "ETH")}
	if err := unsorted.Validate(); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	withZero := Coins{NewCoinp(0, 0, "IOV")}
	if err := withZero.Validate(); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	duplicated := Coins{NewCoinp(1, 0, "IOV"), NewCoinp(1, 0, "IOV")}
	if err := duplicated.Validate(); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestNormalizeCoins(t *testing.T) {
	got, err := NormalizeCoins(Coins{
		NewCoinp(1, 0, "IOV"),
		nil,
		NewCoinp(2, 0, "ETH"),
		NewCoinp(3, 0, "IOV"),
		NewCoinp(-2, 0, "ETH"),
	})
	assert.Nil(t, err)
	assert.Equal(t, true, got.Equals(Coins{NewCoinp(4, 0, "IOV")}))

	empty, err := NormalizeCoins(nil)
	assert.Nil(t, err)
	assert.Equal(t, true, empty.IsEmpty())
}
