package currency

import (
	"context"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/store"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/iov-one/batchpay/weavetest/assert"
)

func TestCreateTokenInfoHandler(t *testing.T) {
	permA := weavetest.NewCondition()
	permB := weavetest.NewCondition()

	cases := map[string]struct {
		signers        []batchpay.Condition
		issuer         batchpay.Address
		initState      map[string]*TokenInfo
		msg            batchpay.Msg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		query          string
		wantQuery      *TokenInfo
	}{
		"updating token info": {
			signers:        []batchpay.Condition{permA, permB},
			issuer:         permA.Address(),
			initState:      map[string]*TokenInfo{"DOGE": {Name: "Doge Coin"}},
			msg:            &CreateMsg{Ticker: "DOGE", Name: "Doge Coin"},
			wantCheckErr:   errors.ErrDuplicate,
			wantDeliverErr: errors.ErrDuplicate,
		},
		"insufficient permission": {
			signers:        []batchpay.Condition{permB},
			issuer:         permA.Address(),
			msg:            &CreateMsg{Ticker: "DOGE", Name: "Doge Coin"},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"invalid ticker": {
			signers:        []batchpay.Condition{permA},
			issuer:         permA.Address(),
			msg:            &CreateMsg{Ticker: "doge", Name: "Doge Coin"},
			wantCheckErr:   errors.ErrCurrency,
			wantDeliverErr: errors.ErrCurrency,
		},
		"no issuer means anyone can create": {
			signers:   []batchpay.Condition{permB},
			msg:       &CreateMsg{Ticker: "TKR", Name: "tikr"},
			query:     "TKR",
			wantQuery: &TokenInfo{Name: "tikr"},
		},
		"ok": {
			signers:   []batchpay.Condition{permA, permB},
			issuer:    permA.Address(),
			msg:       &CreateMsg{Ticker: "TKR", Name: "tikr"},
			query:     "TKR",
			wantQuery: &TokenInfo{Name: "tikr"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			bucket := NewTokenInfoBucket()
			for ticker, info := range tc.initState {
				assert.Nil(t, bucket.Create(db, ticker, info))
			}

			auth := &weavetest.Auth{Signers: tc.signers}
			h := newCreateTokenInfoHandler(auth, tc.issuer)
			tx := &weavetest.Tx{Msg: tc.msg}
			ctx := context.Background()

			_, err := h.Check(ctx, db.CacheWrap(), tx)
			assert.IsErr(t, tc.wantCheckErr, err)
			_, err = h.Deliver(ctx, db, tx)
			assert.IsErr(t, tc.wantDeliverErr, err)

			if tc.query == "" {
				return
			}
			info, err := bucket.Get(db, tc.query)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantQuery, info)
		})
	}
}

func TestGenesis(t *testing.T) {
	const genesis = `{
		"currencies": [
			{"ticker": "ETH", "name": "Ether"},
			{"ticker": "DOGE", "name": "Doge Coin"}
		]
	}`
	var opts batchpay.Options
	assert.Nil(t, jsonOptions(genesis, &opts))

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	b := NewTokenInfoBucket()
	info, err := b.Get(db, "DOGE")
	assert.Nil(t, err)
	assert.Equal(t, "Doge Coin", info.Name)
	assert.Nil(t, b.Exists(db, "ETH"))
	assert.IsErr(t, errors.ErrCurrency, b.Exists(db, "BTC"))

	// registering the same ticker twice fails
	assert.IsErr(t, errors.ErrDuplicate, Initializer{}.FromGenesis(opts, db))

	var bad batchpay.Options
	assert.Nil(t, jsonOptions(`{"currencies": [{"ticker": "BTC", "name": "x"}]}`, &bad))
	err = Initializer{}.FromGenesis(bad, store.MemStore())
	assert.IsErr(t, errors.ErrInput, err)
	assert.Equal(t, 1, len(errors.FieldErrors(err, "Name")))
}
