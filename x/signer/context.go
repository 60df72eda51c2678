package signer

import (
	"context"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/x"
)

type contextKey int // local to the signer module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx batchpay.Context, signers []batchpay.Condition) batchpay.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate reads the signers published by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns who signed the current Context.
// May be empty
func (a Authenticate) GetConditions(ctx batchpay.Context) []batchpay.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]batchpay.Condition)
	return val
}

// HasAddress returns true if the given address signed the current Context.
func (a Authenticate) HasAddress(ctx batchpay.Context, addr batchpay.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
