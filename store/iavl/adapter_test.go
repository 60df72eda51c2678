package iavl

import (
	"testing"

	"github.com/iov-one/batchpay/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitStore(t *testing.T) {
	s := NewCommitStore("", "test")
	require.NoError(t, s.LoadLatestVersion())

	cache := s.CacheWrap()
	require.NoError(t, cache.Set([]byte("foo"), []byte("bar")))
	require.NoError(t, cache.Set([]byte("fuzz"), []byte("buzz")))

	// not visible before the cache is written and the tree committed
	val, err := s.Get([]byte("foo"))
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, cache.Write())
	id, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)
	assert.NotEmpty(t, id.Hash)

	val, err = s.Get([]byte("foo"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bar"), val)

	latest, err := s.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, id.Version, latest.Version)

	cache = s.CacheWrap()
	it, err := cache.Iterator([]byte("f"), nil)
	require.NoError(t, err)
	var keys []string
	for {
		k, _, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		require.NoError(t, err)
		keys = append(keys, string(k))
	}
	it.Release()
	assert.Equal(t, []string{"foo", "fuzz"}, keys)

	// discarded changes are never committed
	require.NoError(t, cache.Delete([]byte("foo")))
	cache.Discard()
	_, err = s.Commit()
	require.NoError(t, err)
	val, err = s.Get([]byte("foo"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bar"), val)
}
