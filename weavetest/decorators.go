package weavetest

import "github.com/iov-one/batchpay"

// Decorator passes every transaction to the next handler unless an error is
// configured for the called method. Calls are counted before the error is
// returned.
type Decorator struct {
	CheckErr   error
	DeliverErr error

	CheckCalls   int
	DeliverCalls int
}

var _ batchpay.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx, next batchpay.Checker) (*batchpay.CheckResult, error) {
	d.CheckCalls++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx, next batchpay.Deliverer) (*batchpay.DeliverResult, error) {
	d.DeliverCalls++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate wraps the handler with given decorators. The first decorator is
// the outermost one.
func Decorate(h batchpay.Handler, decorators ...batchpay.Decorator) batchpay.Handler {
	for i := len(decorators) - 1; i >= 0; i-- {
		h = step{d: decorators[i], next: h}
	}
	return h
}

type step struct {
	d    batchpay.Decorator
	next batchpay.Handler
}

func (s step) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.next)
}

func (s step) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.next)
}
