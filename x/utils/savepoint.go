package utils

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
)

// Savepoint will isolate all data inside of the call,
// and commit/rollback to savepoint based on if error
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ batchpay.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator,
// but you must call OnCheck/OnDeliver so it will be triggered
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will trigger on CheckTx
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver returns a savepoint that will trigger on DeliverTx
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

// Check will optionally set a checkpoint
func (s Savepoint) Check(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx, next batchpay.Checker) (*batchpay.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	var res *batchpay.CheckResult
	err := InSavepoint(store, func(db batchpay.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Deliver will optionally set a checkpoint
func (s Savepoint) Deliver(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx, next batchpay.Deliverer) (*batchpay.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	var res *batchpay.DeliverResult
	err := InSavepoint(store, func(db batchpay.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// InSavepoint runs fn against a cache wrap of the store. Changes are written
// only if fn succeeds and discarded otherwise. A store that cannot be cache
// wrapped is rejected with ErrHuman before fn is called, as its changes could
// not be rolled back.
func InSavepoint(store batchpay.KVStore, fn func(batchpay.KVStore) error) error {
	cstore, ok := store.(batchpay.CacheableKVStore)
	if !ok {
		return errors.Wrapf(errors.ErrHuman, "store %T cannot be cache wrapped", store)
	}

	cache := cstore.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "writing savepoint")
	}
	return nil
}
