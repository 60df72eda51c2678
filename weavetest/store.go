package weavetest

import (
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/store/iavl"
)

// CommitKVStore returns an IAVL store kept in a temporary directory, the same
// engine batchpayd runs on. The directory is removed when the test ends.
func CommitKVStore(t testing.TB) batchpay.CommitKVStore {
	t.Helper()
	return iavl.NewCommitStore(t.TempDir(), "db")
}
