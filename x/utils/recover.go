package utils

import (
	"fmt"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
)

// Recovery is a decorator to recover from panics in transactions.
// A recovered panic is returned as ErrPanic and logged together with the
// height and the declared signers of the transaction, so a broken batch
// can be traced back to whoever submitted it.
type Recovery struct{}

var _ batchpay.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx, next batchpay.Checker) (_ *batchpay.CheckResult, err error) {
	defer r.recoverPanic(ctx, "check", tx, &err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx, next batchpay.Deliverer) (_ *batchpay.DeliverResult, err error) {
	defer r.recoverPanic(ctx, "deliver", tx, &err)
	return next.Deliver(ctx, store, tx)
}

// recoverPanic must be deferred directly, recover returns nil otherwise.
func (Recovery) recoverPanic(ctx batchpay.Context, call string, tx batchpay.Tx, err *error) {
	p := recover()
	if p == nil {
		return
	}
	*err = errors.Wrapf(errors.ErrPanic, "%v", p)

	keyvals := []interface{}{"call", call, "panic", fmt.Sprint(p)}
	if h, ok := batchpay.GetHeight(ctx); ok {
		keyvals = append(keyvals, "height", h)
	}
	if s, ok := tx.(signedTx); ok {
		for _, c := range s.GetSigners() {
			keyvals = append(keyvals, "signer", c.Address().String())
		}
	}
	batchpay.GetLogger(ctx).Error("Recovered from panic", keyvals...)
}

// signedTx is implemented by transactions that declare their signers.
type signedTx interface {
	GetSigners() []batchpay.Condition
}
