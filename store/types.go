package store

import "github.com/iov-one/batchpay"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = batchpay.ReadOnlyKVStore
type SetDeleter = batchpay.SetDeleter
type KVStore = batchpay.KVStore
type Batch = batchpay.Batch
type Iterator = batchpay.Iterator
type CacheableKVStore = batchpay.CacheableKVStore
type KVCacheWrap = batchpay.KVCacheWrap
type CommitKVStore = batchpay.CommitKVStore
type CommitID = batchpay.CommitID
type Model = batchpay.Model
