package app

import (
	"context"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/iov-one/batchpay/x/utils"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	c1 := &weavetest.Decorator{}
	c2 := &weavetest.Decorator{}
	var missing *weavetest.Decorator
	h := &weavetest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		nil,
		missing,
		c2,
	).WithHandler(h)

	ctx := context.Background()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/chain"}}

	_, err := stack.Check(ctx, nil, tx)
	require.NoError(t, err)
	_, err = stack.Deliver(ctx, nil, tx)
	require.NoError(t, err)

	require.Equal(t, 2, c1.CheckCalls+c1.DeliverCalls)
	require.Equal(t, 2, c2.CheckCalls+c2.DeliverCalls)
	require.Equal(t, 2, h.CheckCalls+h.DeliverCalls)
}

func TestChainStopsOnError(t *testing.T) {
	outer := &weavetest.Decorator{}
	failing := &weavetest.Decorator{DeliverErr: errors.ErrUnauthorized.New("no")}
	h := &weavetest.Handler{}

	stack := ChainDecorators(outer).Chain(failing).WithHandler(h)

	ctx := context.Background()
	_, err := stack.Deliver(ctx, nil, &weavetest.Tx{})
	require.True(t, errors.ErrUnauthorized.Is(err))
	require.Equal(t, 1, outer.DeliverCalls)
	require.Equal(t, 0, h.DeliverCalls)

	_, err = stack.Check(ctx, nil, &weavetest.Tx{})
	require.NoError(t, err)
	require.Equal(t, 1, h.CheckCalls)
}

func TestChainRecovery(t *testing.T) {
	h := &weavetest.Handler{Panic: "boom"}
	stack := ChainDecorators(utils.NewRecovery()).WithHandler(h)

	var res *batchpay.DeliverResult
	require.NotPanics(t, func() {
		var err error
		res, err = stack.Deliver(context.Background(), nil, &weavetest.Tx{})
		require.True(t, errors.ErrPanic.Is(err))
	})
	require.Nil(t, res)
}
