package app

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
)

// CommitStore keeps the committed state together with separate check and
// deliver caches on top of it.
type CommitStore struct {
	committed batchpay.CommitKVStore
	deliver   batchpay.KVCacheWrap
	check     batchpay.KVCacheWrap
}

// NewCommitStore loads the latest version of given store. It panics if the
// state cannot be loaded.
func NewCommitStore(store batchpay.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(err)
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
		check:     store.CacheWrap(),
	}
}

// CommitInfo returns the current height and hash
func (cs *CommitStore) CommitInfo() (batchpay.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit flushes the deliver cache, persists a new version and resets both
// caches.
func (cs *CommitStore) Commit() (batchpay.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return batchpay.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	cs.check.Discard()

	res, err := cs.committed.Commit()
	if err != nil {
		return res, errors.Wrap(err, "commit")
	}

	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return res, nil
}

// CheckStore returns the store used during the checking phase.
func (cs *CommitStore) CheckStore() batchpay.CacheableKVStore {
	return cs.check
}

// DeliverStore returns the store used during the delivery phase.
func (cs *CommitStore) DeliverStore() batchpay.CacheableKVStore {
	return cs.deliver
}

// _bp: is a prefix for application internal data
const chainIDKey = "_bp:chainID"

// mustLoadChainID returns the stored chain id, if any. Panics on database
// failure.
func mustLoadChainID(kv batchpay.ReadOnlyKVStore) string {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		panic(err)
	}
	return string(v)
}

// saveChainID stores the chain id. It can be done only once.
func saveChainID(kv batchpay.KVStore, chainID string) error {
	if !batchpay.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrImmutable, "chain id already set")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
