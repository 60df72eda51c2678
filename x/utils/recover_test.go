package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/store"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/iov-one/batchpay/weavetest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestRecovery(t *testing.T) {
	h := &weavetest.Handler{Panic: "boom"}
	r := NewRecovery()

	ctx := context.Background()
	s := store.MemStore()

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { h.Check(ctx, s, nil) })
	assert.Panics(t, func() { h.Deliver(ctx, s, nil) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, s, nil, h)
	assert.IsErr(t, errors.ErrPanic, err)

	_, err = r.Deliver(ctx, s, nil, h)
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestRecoveryLogsSigner(t *testing.T) {
	var buf bytes.Buffer
	ctx := batchpay.WithLogger(context.Background(), log.NewTMLogger(&buf))
	ctx = batchpay.WithHeight(ctx, 42)

	signer := weavetest.NewCondition()
	tx := &weavetest.Tx{
		Msg:     &weavetest.Msg{RoutePath: "multisend/send"},
		Signers: []batchpay.Condition{signer},
	}
	stack := weavetest.Decorate(&weavetest.Handler{Panic: "index out of range"}, NewRecovery())

	_, err := stack.Deliver(ctx, store.MemStore(), tx)
	assert.IsErr(t, errors.ErrPanic, err)

	out := buf.String()
	for _, want := range []string{"index out of range", "height=42", "call=deliver", signer.Address().String()} {
		if !strings.Contains(out, want) {
			t.Fatalf("%q not found in log output: %s", want, out)
		}
	}
}
