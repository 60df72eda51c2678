package batchpay

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/batchpay/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptions(t *testing.T) {
	var opts Options
	require.NoError(t, json.Unmarshal([]byte(`{"count": 3, "broken": "x"}`), &opts))

	var count int
	assert.NoError(t, opts.ReadOptions("count", &count))
	assert.Equal(t, 3, count)

	var missing int
	assert.NoError(t, opts.ReadOptions("missing", &missing))
	assert.Equal(t, 0, missing)

	var broken int
	assert.True(t, errors.ErrInput.Is(opts.ReadOptions("broken", &broken)))
}

type recordingInit struct {
	calls *[]string
	name  string
	err   error
}

func (r recordingInit) FromGenesis(Options, KVStore) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestChainInitializers(t *testing.T) {
	var calls []string
	init := ChainInitializers(
		recordingInit{calls: &calls, name: "first"},
		recordingInit{calls: &calls, name: "second", err: errors.ErrState.New("stop")},
		recordingInit{calls: &calls, name: "third"},
	)
	err := init.FromGenesis(Options{}, nil)
	assert.True(t, errors.ErrState.Is(err))
	assert.Equal(t, []string{"first", "second"}, calls)
}
