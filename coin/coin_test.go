package coin

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/weavetest/assert"
)

func TestCoinAdd(t *testing.T) {
	cases := map[string]struct {
		A, B    Coin
		Want    Coin
		WantErr *errors.Error
	}{
		"same ticker": {
			A:    NewCoin(5, "ETH"),
			B:    NewCoin(7, "ETH"),
			Want: NewCoin(12, "ETH"),
		},
		"empty coin is neutral": {
			A:    Coin{},
			B:    NewCoin(7, "ETH"),
			Want: NewCoin(7, "ETH"),
		},
		"different tickers": {
			A:       NewCoin(5, "ETH"),
			B:       NewCoin(7, "BTC"),
			WantErr: errors.ErrCurrency,
		},
		"overflow": {
			A:       NewCoin(math.MaxUint64, "ETH"),
			B:       NewCoin(1, "ETH"),
			WantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.A.Add(tc.B)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestCoinSubtract(t *testing.T) {
	cases := map[string]struct {
		A, B    Coin
		Want    Coin
		WantErr *errors.Error
	}{
		"enough funds": {
			A:    NewCoin(10, "ETH"),
			B:    NewCoin(4, "ETH"),
			Want: NewCoin(6, "ETH"),
		},
		"everything": {
			A:    NewCoin(10, "ETH"),
			B:    NewCoin(10, "ETH"),
			Want: NewCoin(0, "ETH"),
		},
		"zero is a no-op": {
			A:    NewCoin(10, "ETH"),
			B:    NewCoin(0, "BTC"),
			Want: NewCoin(10, "ETH"),
		},
		"not enough": {
			A:       NewCoin(3, "ETH"),
			B:       NewCoin(4, "ETH"),
			WantErr: errors.ErrInsufficientAmount,
		},
		"different tickers": {
			A:       NewCoin(3, "ETH"),
			B:       NewCoin(1, "BTC"),
			WantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.A.Subtract(tc.B)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestCoinValidate(t *testing.T) {
	assert.Nil(t, NewCoinp(1, "ETH").Validate())
	assert.Nil(t, NewCoinp(0, "DOGE").Validate())
	assert.IsErr(t, errors.ErrCurrency, NewCoinp(1, "eth").Validate())
	assert.IsErr(t, errors.ErrCurrency, NewCoinp(1, "").Validate())

	var c *Coin
	assert.IsErr(t, errors.ErrEmpty, c.Validate())
}

func TestCoinCompare(t *testing.T) {
	a := NewCoin(5, "ETH")
	assert.Equal(t, 0, a.Compare(NewCoin(5, "BTC")))
	assert.Equal(t, 1, a.Compare(NewCoin(4, "ETH")))
	assert.Equal(t, -1, a.Compare(NewCoin(6, "ETH")))
	assert.Equal(t, true, a.IsGTE(NewCoin(5, "ETH")))
	assert.Equal(t, false, a.IsGTE(NewCoin(5, "BTC")))
}

func TestParseHumanFormat(t *testing.T) {
	cases := map[string]struct {
		Input   string
		Want    Coin
		WantErr *errors.Error
	}{
		"with space":    {Input: "100 ETH", Want: NewCoin(100, "ETH")},
		"without space": {Input: "7DOGE", Want: NewCoin(7, "DOGE")},
		"lower case":    {Input: "1 eth", WantErr: errors.ErrInput},
		"negative":      {Input: "-1 ETH", WantErr: errors.ErrInput},
		"too large":     {Input: "18446744073709551616 ETH", WantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.Input)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestCoinUnmarshalJSON(t *testing.T) {
	var c Coin
	assert.Nil(t, json.Unmarshal([]byte(`"12 ETH"`), &c))
	assert.Equal(t, NewCoin(12, "ETH"), c)

	assert.Nil(t, json.Unmarshal([]byte(`{"ticker": "BTC", "amount": 3}`), &c))
	assert.Equal(t, NewCoin(3, "BTC"), c)

	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte(`"x"`), &c))
}
