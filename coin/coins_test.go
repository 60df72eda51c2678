package coin

import (
	"testing"

	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/weavetest/assert"
)

func TestCombineCoins(t *testing.T) {
	cs, err := CombineCoins(
		NewCoin(5, "ETH"),
		NewCoin(1, "BTC"),
		NewCoin(0, "DOGE"),
		NewCoin(2, "ETH"),
	)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(cs))
	assert.Equal(t, "BTC", cs[0].Ticker)
	assert.Equal(t, uint64(7), cs.Balance("ETH"))
	assert.Equal(t, uint64(0), cs.Balance("DOGE"))
	assert.Nil(t, cs.Validate())
}

func TestCoinsSubtract(t *testing.T) {
	cases := map[string]struct {
		Start   []Coin
		Sub     Coin
		Want    []Coin
		WantErr *errors.Error
	}{
		"partial": {
			Start: []Coin{NewCoin(5, "ETH")},
			Sub:   NewCoin(2, "ETH"),
			Want:  []Coin{NewCoin(3, "ETH")},
		},
		"everything removes the coin": {
			Start: []Coin{NewCoin(1, "BTC"), NewCoin(5, "ETH")},
			Sub:   NewCoin(5, "ETH"),
			Want:  []Coin{NewCoin(1, "BTC")},
		},
		"missing ticker": {
			Start:   []Coin{NewCoin(5, "ETH")},
			Sub:     NewCoin(1, "BTC"),
			WantErr: errors.ErrInsufficientAmount,
		},
		"too much": {
			Start:   []Coin{NewCoin(5, "ETH")},
			Sub:     NewCoin(6, "ETH"),
			WantErr: errors.ErrInsufficientAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, err := CombineCoins(tc.Start...)
			assert.Nil(t, err)
			got, err := start.Subtract(tc.Sub)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
				return
			}
			assert.Nil(t, err)
			want, err := CombineCoins(tc.Want...)
			assert.Nil(t, err)
			if !want.Equals(got) {
				t.Fatalf("want %s, got %s", want, got)
			}
		})
	}
}

func TestCoinsValidate(t *testing.T) {
	unsorted := Coins{NewCoinp(1, "ETH"), NewCoinp(1, "BTC")}
	assert.IsErr(t, errors.ErrCurrency, unsorted.Validate())

	zero := Coins{NewCoinp(0, "ETH")}
	assert.IsErr(t, errors.ErrAmount, zero.Validate())

	var empty Coins
	assert.Nil(t, empty.Validate())
	assert.Equal(t, true, empty.IsEmpty())
	assert.Equal(t, true, Coins{NewCoinp(3, "ETH")}.Contains(NewCoin(3, "ETH")))
}
