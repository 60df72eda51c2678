package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/store"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// rawQuery returns all stored models that match given key or prefix.
type rawQuery struct{}

func (rawQuery) Query(db batchpay.ReadOnlyKVStore, mod string, data []byte) ([]batchpay.Model, error) {
	if mod == batchpay.PrefixQueryMod {
		it, err := db.Iterator(data, nil)
		if err != nil {
			return nil, err
		}
		defer it.Release()
		var res []batchpay.Model
		for {
			k, v, err := it.Next()
			if errors.ErrIteratorDone.Is(err) {
				return res, nil
			}
			if err != nil {
				return nil, err
			}
			if !bytes.HasPrefix(k, data) {
				return res, nil
			}
			res = append(res, batchpay.Model{Key: k, Value: v})
		}
	}
	v, err := db.Get(data)
	if err != nil || v == nil {
		return nil, err
	}
	return []batchpay.Model{{Key: data, Value: v}}, nil
}

// genesisWriter stores the "greeting" genesis option under the "greeting" key.
type genesisWriter struct{}

func (genesisWriter) FromGenesis(opts batchpay.Options, db batchpay.KVStore) error {
	var greeting string
	if err := opts.ReadOptions("greeting", &greeting); err != nil {
		return err
	}
	return db.Set([]byte("greeting"), []byte(greeting))
}

func TestBaseApp(t *testing.T) {
	kv := weavetest.CommitKVStore(t)

	qr := batchpay.NewQueryRouter()
	qr.Register("/raw", rawQuery{})

	h := &weavetest.Handler{
		Write:         &batchpay.Model{Key: []byte("written"), Value: []byte("yes")},
		CheckResult:   batchpay.CheckResult{GasAllocated: 7},
		DeliverResult: batchpay.DeliverResult{Data: []byte("done")},
	}
	rt := NewRouter()
	rt.Handle(&weavetest.Msg{RoutePath: "test/write"}, h)

	decoder := func(raw []byte) (batchpay.Tx, error) {
		if len(raw) == 0 {
			panic("no data")
		}
		return &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: string(raw)}}, nil
	}

	sapp := NewStoreApp("test-app", kv, qr, nil).WithInit(genesisWriter{})
	app := NewBaseApp(sapp, decoder, rt, false)

	info := app.Info(abci.RequestInfo{})
	require.Equal(t, "test-app", info.Data)
	require.Equal(t, int64(0), info.LastBlockHeight)

	app.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain",
		AppStateBytes: []byte(`{"greeting": "hello"}`),
	})
	require.Equal(t, "test-chain", app.GetChainID())
	require.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{
			ChainId:       "other-chain",
			AppStateBytes: []byte(`{}`),
		})
	})

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})

	chres := app.CheckTx([]byte("test/write"))
	require.Equal(t, uint32(0), chres.Code, chres.Log)
	require.Equal(t, int64(7), chres.GasWanted)

	dres := app.DeliverTx([]byte("test/write"))
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	require.Equal(t, []byte("done"), dres.Data)

	dres = app.DeliverTx([]byte("test/unknown"))
	require.Equal(t, errors.ErrNotFound.ABCICode(), dres.Code)

	dres = app.DeliverTx(nil)
	require.Equal(t, errors.ErrPanic.ABCICode(), dres.Code)

	// Nothing is visible before the commit.
	q := app.Query(abci.RequestQuery{Path: "/raw", Data: []byte("written")})
	require.Equal(t, uint32(0), q.Code, q.Log)
	models := queryModels(t, q)
	require.Len(t, models, 0)

	cres := app.Commit()
	require.NotEmpty(t, cres.Data)

	info = app.Info(abci.RequestInfo{})
	require.Equal(t, int64(1), info.LastBlockHeight)
	require.Equal(t, cres.Data, info.LastBlockAppHash)

	q = app.Query(abci.RequestQuery{Path: "/raw", Data: []byte("written")})
	models = queryModels(t, q)
	require.Equal(t, []batchpay.Model{{Key: []byte("written"), Value: []byte("yes")}}, models)

	q = app.Query(abci.RequestQuery{Path: "/raw?prefix", Data: []byte("greet")})
	models = queryModels(t, q)
	require.Equal(t, []batchpay.Model{{Key: []byte("greeting"), Value: []byte("hello")}}, models)

	var value ResultSet
	require.NoError(t, value.Unmarshal(q.Value))
	require.Len(t, value.Results, 1)

	q = app.Query(abci.RequestQuery{Path: "/unknown"})
	require.Equal(t, errors.ErrNotFound.ABCICode(), q.Code)
}

// announcer logs a line through the context logger on every call.
type announcer struct{}

func (announcer) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	batchpay.GetLogger(ctx).Info("checked")
	return &batchpay.CheckResult{}, nil
}

func (announcer) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	batchpay.GetLogger(ctx).Info("delivered")
	return &batchpay.DeliverResult{}, nil
}

func TestBaseAppLogContext(t *testing.T) {
	var buf bytes.Buffer
	rt := NewRouter()
	rt.Handle(&weavetest.Msg{RoutePath: "test/announce"}, announcer{})
	decoder := func(raw []byte) (batchpay.Tx, error) {
		if len(raw) == 0 {
			return nil, errors.ErrInput.New("empty")
		}
		return &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: string(raw)}}, nil
	}
	sapp := NewStoreApp("test-app", weavetest.CommitKVStore(t), batchpay.NewQueryRouter(), nil).
		WithLogger(log.NewTMLogger(&buf))
	app := NewBaseApp(sapp, decoder, rt, false)
	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 3}})

	res := app.DeliverTx([]byte("test/announce"))
	require.Equal(t, uint32(0), res.Code, res.Log)
	out := buf.String()
	for _, want := range []string{"delivered", "call=deliver_tx", "path=test/announce", "size=13"} {
		require.True(t, strings.Contains(out, want), "%q not in %s", want, out)
	}

	buf.Reset()
	cres := app.CheckTx([]byte("test/announce"))
	require.Equal(t, uint32(0), cres.Code, cres.Log)
	require.Contains(t, buf.String(), "call=check_tx")

	cres = app.CheckTx(nil)
	require.Equal(t, errors.ErrInput.ABCICode(), cres.Code)
}

func TestStoreAppReload(t *testing.T) {
	db := store.MemStore()
	require.Nil(t, saveChainID(db, "reload-chain"))
	require.Equal(t, "reload-chain", mustLoadChainID(db))
	require.True(t, errors.ErrImmutable.Is(saveChainID(db, "reload-chain")))
	require.True(t, errors.ErrInput.Is(saveChainID(store.MemStore(), "x")))
}

func queryModels(t *testing.T, q abci.ResponseQuery) []batchpay.Model {
	t.Helper()
	var keys, values ResultSet
	require.NoError(t, keys.Unmarshal(q.Key))
	require.NoError(t, values.Unmarshal(q.Value))
	models, err := JoinResults(&keys, &values)
	require.NoError(t, err)
	return models
}
