package weavetest

import (
	"context"
	"testing"

	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/store"
)

func TestDecoratorWithError(t *testing.T) {
	d := &Decorator{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrNotFound,
	}
	h := &Handler{}
	stack := Decorate(h, d)

	db := store.MemStore()
	ctx := context.Background()

	if _, err := stack.Check(ctx, db, &Tx{}); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("unexpected check error: %+v", err)
	}
	if _, err := stack.Deliver(ctx, db, &Tx{}); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected deliver error: %+v", err)
	}
	if got := d.CheckCalls + d.DeliverCalls; got != 2 {
		t.Fatalf("want 2 decorator calls, got %d", got)
	}
	if got := h.CheckCalls + h.DeliverCalls; got != 0 {
		t.Fatalf("handler must not be called, got %d calls", got)
	}
}

func TestDecoratorCallsHandler(t *testing.T) {
	d := &Decorator{}
	h := &Handler{DeliverErr: errors.ErrAmount}
	stack := Decorate(h, d)

	db := store.MemStore()
	ctx := context.Background()

	if _, err := stack.Check(ctx, db, &Tx{}); err != nil {
		t.Fatalf("unexpected check error: %+v", err)
	}
	if _, err := stack.Deliver(ctx, db, &Tx{}); !errors.ErrAmount.Is(err) {
		t.Fatalf("unexpected deliver error: %+v", err)
	}
	if h.CheckCalls != 1 || h.DeliverCalls != 1 {
		t.Fatalf("unexpected handler calls: %d check, %d deliver", h.CheckCalls, h.DeliverCalls)
	}
	if d.CheckCalls != 1 || d.DeliverCalls != 1 {
		t.Fatalf("unexpected decorator calls: %d check, %d deliver", d.CheckCalls, d.DeliverCalls)
	}
}
