package app

import (
	"context"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	good := &weavetest.Handler{}
	bad := &weavetest.Handler{DeliverErr: errors.ErrHuman.New("bad")}
	r.Handle(&weavetest.Msg{RoutePath: "test/good"}, good)
	r.Handle(&weavetest.Msg{RoutePath: "test/bad"}, bad)

	require.Panics(t, func() { r.Handle(&weavetest.Msg{RoutePath: "test/good"}, good) })
	require.Panics(t, func() { r.Handle(&weavetest.Msg{RoutePath: "l:7"}, good) })
	require.Panics(t, func() { r.Handle(&weavetest.Msg{RoutePath: "nopath"}, good) })

	ctx := context.Background()
	tx := func(path string) batchpay.Tx {
		return &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: path}}
	}

	_, err := r.Check(ctx, nil, tx("test/good"))
	require.NoError(t, err)
	_, err = r.Deliver(ctx, nil, tx("test/good"))
	require.NoError(t, err)
	require.Equal(t, 2, good.CheckCalls+good.DeliverCalls)

	_, err = r.Deliver(ctx, nil, tx("test/bad"))
	require.True(t, errors.ErrHuman.Is(err))
	require.Equal(t, 1, bad.CheckCalls+bad.DeliverCalls)

	_, err = r.Deliver(ctx, nil, tx("test/missing"))
	require.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Check(ctx, nil, tx("test/missing"))
	require.True(t, errors.ErrNotFound.Is(err))

	_, err = r.Check(ctx, nil, &weavetest.Tx{Err: errors.ErrMsg.New("broken")})
	require.True(t, errors.ErrMsg.Is(err))
	require.Equal(t, 2, good.CheckCalls+good.DeliverCalls)
}
