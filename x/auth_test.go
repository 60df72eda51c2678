package x_test

import (
	"context"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/iov-one/batchpay/weavetest/assert"
	"github.com/iov-one/batchpay/x"
)

func TestChainAuth(t *testing.T) {
	a := weavetest.NewCondition()
	b := weavetest.NewCondition()
	c := weavetest.NewCondition()

	ctxAuth := &weavetest.CtxAuth{Key: "authorized"}
	ctx := ctxAuth.SetConditions(context.Background(), b)
	auth := x.ChainAuth(weavetest.NewAuth(a), ctxAuth)

	assert.Equal(t, []batchpay.Condition{a, b}, auth.GetConditions(ctx))
	assert.Equal(t, true, auth.HasAddress(ctx, a.Address()))
	assert.Equal(t, true, auth.HasAddress(ctx, b.Address()))
	assert.Equal(t, false, auth.HasAddress(ctx, c.Address()))

	empty := x.ChainAuth()
	assert.Equal(t, 0, len(empty.GetConditions(ctx)))
	assert.Equal(t, false, empty.HasAddress(ctx, a.Address()))
}

func TestRequireSigner(t *testing.T) {
	signer := weavetest.NewCondition()
	other := weavetest.NewCondition()
	auth := weavetest.NewAuth(signer)

	cases := map[string]struct {
		Addr    batchpay.Address
		WantErr *errors.Error
	}{
		"signed": {
			Addr: signer.Address(),
		},
		"not signed": {
			Addr:    other.Address(),
			WantErr: errors.ErrUnauthorized,
		},
		"empty address": {
			Addr:    nil,
			WantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := x.RequireSigner(context.Background(), auth, tc.Addr, "sender")
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
