package signer

import (
	"context"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/store"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/iov-one/batchpay/weavetest/assert"
)

// unsignedTx does not declare any signers.
type unsignedTx struct{}

func (unsignedTx) GetMsg() (batchpay.Msg, error) { return nil, nil }
func (unsignedTx) Marshal() ([]byte, error)      { return nil, nil }
func (*unsignedTx) Unmarshal([]byte) error       { return nil }

// signersHandler records the conditions seen by the handler.
type signersHandler struct {
	weavetest.Handler
	seen []batchpay.Condition
}

func (h *signersHandler) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return h.Handler.Check(ctx, db, tx)
}

func (h *signersHandler) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return h.Handler.Deliver(ctx, db, tx)
}

func TestDecorator(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	cases := map[string]struct {
		Decorator Decorator
		Tx        batchpay.Tx
		WantErr   *errors.Error
		WantSeen  []batchpay.Condition
	}{
		"one signer": {
			Decorator: NewDecorator(),
			Tx:        &weavetest.Tx{Signers: []batchpay.Condition{alice}},
			WantSeen:  []batchpay.Condition{alice},
		},
		"two signers": {
			Decorator: NewDecorator(),
			Tx:        &weavetest.Tx{Signers: []batchpay.Condition{alice, bob}},
			WantSeen:  []batchpay.Condition{alice, bob},
		},
		"no signers": {
			Decorator: NewDecorator(),
			Tx:        &weavetest.Tx{},
			WantErr:   errors.ErrUnauthorized,
		},
		"not a signed transaction": {
			Decorator: NewDecorator(),
			Tx:        &unsignedTx{},
			WantErr:   errors.ErrUnauthorized,
		},
		"no signers allowed": {
			Decorator: NewDecorator().AllowMissingSigs(),
			Tx:        &weavetest.Tx{},
			WantSeen:  nil,
		},
		"invalid condition": {
			Decorator: NewDecorator(),
			Tx:        &weavetest.Tx{Signers: []batchpay.Condition{batchpay.Condition("bad")}},
			WantErr:   errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			h := &signersHandler{}
			stack := weavetest.Decorate(h, tc.Decorator)

			_, err := stack.Check(context.Background(), db, tc.Tx)
			assert.IsErr(t, tc.WantErr, err)
			if tc.WantErr == nil {
				assert.Equal(t, tc.WantSeen, h.seen)
			}

			h.seen = nil
			_, err = stack.Deliver(context.Background(), db, tc.Tx)
			assert.IsErr(t, tc.WantErr, err)
			if tc.WantErr == nil {
				assert.Equal(t, tc.WantSeen, h.seen)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	alice := weavetest.NewCondition()
	ctx := withSigners(context.Background(), []batchpay.Condition{alice})

	var auth Authenticate
	assert.Equal(t, true, auth.HasAddress(ctx, alice.Address()))
	assert.Equal(t, false, auth.HasAddress(ctx, weavetest.NewCondition().Address()))
	assert.Equal(t, false, auth.HasAddress(context.Background(), alice.Address()))
}

func TestDeclaredSignersAreNotVerified(t *testing.T) {
	// Any well formed condition is accepted. No key material is checked.
	someone := batchpay.NewCondition("sigs", "ed25519", []byte("not a real public key"))
	h := &signersHandler{}
	stack := weavetest.Decorate(h, NewDecorator())
	tx := &weavetest.Tx{Signers: []batchpay.Condition{someone}}

	_, err := stack.Deliver(context.Background(), store.MemStore(), tx)
	assert.Nil(t, err)
	assert.Equal(t, []batchpay.Condition{someone}, h.seen)
	assert.Equal(t, true, Authenticate{}.HasAddress(withSigners(context.Background(), h.seen), someone.Address()))
}
