package cash

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/coin"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/store"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/iov-one/batchpay/weavetest/assert"
)

func TestSendHandler(t *testing.T) {
	perm := weavetest.NewCondition()
	perm2 := weavetest.NewCondition()
	addr := perm.Address()
	addr2 := perm2.Address()

	foo := coin.NewCoin(100, "FOO")
	some := coin.NewCoinp(5, "FOO")

	cases := map[string]struct {
		signers        []batchpay.Condition
		initState      []coin.Coin
		msg            batchpay.Msg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"wrong message type": {
			msg:            &weavetest.Msg{RoutePath: "cash/send"},
			wantCheckErr:   errors.ErrType,
			wantDeliverErr: errors.ErrType,
		},
		"empty message": {
			msg:            &SendMsg{},
			wantCheckErr:   errors.ErrAmount,
			wantDeliverErr: errors.ErrAmount,
		},
		"no source": {
			msg:            &SendMsg{Amount: some},
			wantCheckErr:   errors.ErrEmpty,
			wantDeliverErr: errors.ErrEmpty,
		},
		"not signed by the source": {
			signers:        []batchpay.Condition{perm2},
			msg:            &SendMsg{Amount: some, Source: addr, Destination: addr2},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"sender has no money": {
			signers:        []batchpay.Condition{perm},
			msg:            &SendMsg{Amount: some, Source: addr, Destination: addr2},
			wantDeliverErr: errors.ErrInsufficientAmount,
		},
		"sender has enough money": {
			signers:   []batchpay.Condition{perm},
			initState: []coin.Coin{foo},
			msg:       &SendMsg{Amount: some, Source: addr, Destination: addr2},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			auth := &weavetest.Auth{Signers: tc.signers}
			control := NewController(nil)
			h := NewSendHandler(auth, control)

			db := store.MemStore()
			if len(tc.initState) > 0 {
				w, err := WalletWith(tc.initState...)
				assert.Nil(t, err)
				assert.Nil(t, NewBucket().Save(db, addr, w))
			}

			tx := &weavetest.Tx{Msg: tc.msg}
			ctx := context.Background()

			_, err := h.Check(ctx, db, tx)
			assert.IsErr(t, tc.wantCheckErr, err)
			_, err = h.Deliver(ctx, db, tx)
			assert.IsErr(t, tc.wantDeliverErr, err)
			if tc.wantDeliverErr != nil {
				return
			}

			bal, err := control.Balance(db, addr2, "FOO")
			assert.Nil(t, err)
			assert.Equal(t, some.Amount, bal)
		})
	}
}

func TestWalletQuery(t *testing.T) {
	addr := weavetest.NewCondition().Address()
	db := store.MemStore()
	assert.Nil(t, NewController(nil).IssueCoins(db, addr, coin.NewCoin(9, "ETH")))

	qr := batchpay.NewQueryRouter()
	RegisterQuery(qr)
	res, err := qr.Handler("/wallets").Query(db, batchpay.KeyQueryMod, addr)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))

	var w Wallet
	assert.Nil(t, w.Unmarshal(res[0].Value))
	assert.Equal(t, uint64(9), coin.Coins(w.Coins).Balance("ETH"))
}

func TestGenesis(t *testing.T) {
	addr := weavetest.NewCondition().Address()
	raw := `{"cash": [{"address": "` + addr.String() + `", "coins": ["10 ETH", {"ticker": "BTC", "amount": 2}, "5 ETH"]}]}`

	var opts batchpay.Options
	assert.Nil(t, json.Unmarshal([]byte(raw), &opts))

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	control := NewController(nil)
	bal, err := control.Balance(db, addr, "ETH")
	assert.Nil(t, err)
	assert.Equal(t, uint64(15), bal)
	bal, err = control.Balance(db, addr, "BTC")
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), bal)

	bad := `{"cash": [{"address": "", "coins": ["10 ETH"]}]}`
	assert.Nil(t, json.Unmarshal([]byte(bad), &opts))
	assert.IsErr(t, errors.ErrEmpty, Initializer{}.FromGenesis(opts, db))
}
