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

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := batchpay.WithLogger(context.Background(), log.NewTMLogger(&buf))
	ctx = batchpay.WithHeight(ctx, 7)
	db := store.MemStore()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/logging"}}

	h := &weavetest.Handler{
		DeliverResult: batchpay.DeliverResult{Log: "all good"},
		CheckErr:      errors.ErrHuman.New("checking failed"),
	}
	stack := weavetest.Decorate(h, NewLogging())

	_, err := stack.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	out := buf.String()
	for _, want := range []string{"all good", "path=test/logging", "height=7"} {
		if !strings.Contains(out, want) {
			t.Fatalf("%q not found in log output: %s", want, out)
		}
	}

	buf.Reset()
	_, err = stack.Check(ctx, db, tx)
	assert.IsErr(t, errors.ErrHuman, err)
	if out := buf.String(); !strings.Contains(out, "checking failed") {
		t.Fatalf("error not logged: %s", out)
	}
}
