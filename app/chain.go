package app

import (
	"reflect"

	"github.com/iov-one/batchpay"
)

// Decorators is an ordered stack of decorators waiting for the final
// handler.
type Decorators struct {
	chain []batchpay.Decorator
}

/*
ChainDecorators builds a stack of decorators. The first decorator is the
outermost one, executed before all the others. Once the final Handler
(usually a Router) is provided, the stack becomes a Handler itself.

	app.ChainDecorators(
	  utils.NewRecovery(),
	  utils.NewLogging(),
	  signer.NewDecorator(),
	  utils.NewSavepoint().OnDeliver(),
	).WithHandler(router)

Nil decorators are ignored, so optional ones can be passed inline.
*/
func ChainDecorators(chain ...batchpay.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new stack with given decorators appended at the bottom.
func (d Decorators) Chain(chain ...batchpay.Decorator) Decorators {
	next := make([]batchpay.Decorator, 0, len(d.chain)+len(chain))
	next = append(next, d.chain...)
	for _, dec := range chain {
		if isNil(dec) {
			continue
		}
		next = append(next, dec)
	}
	return Decorators{chain: next}
}

func isNil(d batchpay.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the stack into a single Handler.
func (d Decorators) WithHandler(h batchpay.Handler) batchpay.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step executes a single decorator around the rest of the stack.
type step struct {
	d    batchpay.Decorator
	next batchpay.Handler
}

var _ batchpay.Handler = step{}

func (s step) Check(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

func (s step) Deliver(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
