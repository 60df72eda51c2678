package utils

import (
	"context"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/store"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/iov-one/batchpay/weavetest/assert"
)

func TestSavepoint(t *testing.T) {
	// always written before calling the stack
	ok := batchpay.Model{Key: []byte("demo"), Value: []byte("data")}
	// written by the handler
	nk := batchpay.Model{Key: []byte{1, 2, 3}, Value: []byte{4, 5, 6}}

	cases := map[string]struct {
		Savepoint Savepoint
		HandlerOK bool
		Check     bool

		WantWritten [][]byte
		WantMissing [][]byte
	}{
		"savepoint disabled, error keeps the write": {
			Savepoint:   NewSavepoint(),
			Check:       true,
			WantWritten: [][]byte{ok.Key, nk.Key},
		},
		"check savepoint rolls back": {
			Savepoint:   NewSavepoint().OnCheck(),
			Check:       true,
			WantWritten: [][]byte{ok.Key},
			WantMissing: [][]byte{nk.Key},
		},
		"deliver savepoint rolls back": {
			Savepoint:   NewSavepoint().OnDeliver(),
			WantWritten: [][]byte{ok.Key},
			WantMissing: [][]byte{nk.Key},
		},
		"both activated": {
			Savepoint:   NewSavepoint().OnDeliver().OnCheck(),
			WantWritten: [][]byte{ok.Key},
			WantMissing: [][]byte{nk.Key},
		},
		"check savepoint does not affect deliver": {
			Savepoint:   NewSavepoint().OnCheck(),
			WantWritten: [][]byte{ok.Key, nk.Key},
		},
		"success is written": {
			Savepoint:   NewSavepoint().OnCheck().OnDeliver(),
			HandlerOK:   true,
			WantWritten: [][]byte{ok.Key, nk.Key},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			h := &weavetest.Handler{Write: &nk}
			if !tc.HandlerOK {
				h.CheckErr = errors.ErrHuman
				h.DeliverErr = errors.ErrHuman
			}
			stack := weavetest.Decorate(h, tc.Savepoint)

			db := store.MemStore()
			assert.Nil(t, db.Set(ok.Key, ok.Value))

			ctx := context.Background()
			var err error
			if tc.Check {
				_, err = stack.Check(ctx, db, &weavetest.Tx{})
			} else {
				_, err = stack.Deliver(ctx, db, &weavetest.Tx{})
			}
			if tc.HandlerOK {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, errors.ErrHuman, err)
			}

			for _, k := range tc.WantWritten {
				has, err := db.Has(k)
				assert.Nil(t, err)
				if !has {
					t.Errorf("key %X not written", k)
				}
			}
			for _, k := range tc.WantMissing {
				has, err := db.Has(k)
				assert.Nil(t, err)
				if has {
					t.Errorf("key %X must not be written", k)
				}
			}
		})
	}
}

// plainStore hides the cache wrapping of the store it embeds.
type plainStore struct {
	batchpay.KVStore
}

func TestInSavepointRequiresCacheableStore(t *testing.T) {
	db := store.MemStore()
	called := false
	err := InSavepoint(plainStore{db}, func(db batchpay.KVStore) error {
		called = true
		return db.Set([]byte("key"), []byte("value"))
	})
	assert.IsErr(t, errors.ErrHuman, err)
	if called {
		t.Fatal("function must not run without a savepoint")
	}
	has, err := db.Has([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}
