/*
Package signer exposes the declared signers of a transaction to the handlers.

No signature is verified, neither by this package nor by the tendermint node
hosting the application. Any transaction can name any condition as its
signer, so declared signers must only be trusted on development networks.
The Decorator validates the declared conditions and publishes them in the
context, where Authenticate can read them.
*/
package signer

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
)

// SignedTx represents a transaction that declares who signed it.
type SignedTx interface {
	// GetSigners returns the conditions of all parties that signed the
	// transaction.
	GetSigners() []batchpay.Condition
}

// Decorator publishes the transaction signers in the context.
type Decorator struct {
	allowMissingSigs bool
}

var _ batchpay.Decorator = Decorator{}

// NewDecorator returns a decorator that requires at least one signer to be
// present.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs allows us to pass along items with no signers
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check adds the signers to the context before calling down the stack.
func (d Decorator) Check(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx, next batchpay.Checker) (*batchpay.CheckResult, error) {
	ctx, err := d.withTxSigners(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver adds the signers to the context before calling down the stack.
func (d Decorator) Deliver(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx, next batchpay.Deliverer) (*batchpay.DeliverResult, error) {
	ctx, err := d.withTxSigners(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) withTxSigners(ctx batchpay.Context, tx batchpay.Tx) (batchpay.Context, error) {
	var signers []batchpay.Condition
	if stx, ok := tx.(SignedTx); ok {
		signers = stx.GetSigners()
	}
	for i, s := range signers {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrapf(err, "signer %d", i)
		}
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	if len(signers) > 0 {
		ctx = batchpay.WithLogInfo(ctx, "signer", signers[0].Address())
	}
	return withSigners(ctx, signers), nil
}
