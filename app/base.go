package app

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp runs every transaction, in both CheckTx and DeliverTx, through a
// single handler stack on top of the storage and query functionality of
// StoreApp. There is no begin or end block processing, batches are only
// ever executed as transactions.
type BaseApp struct {
	*StoreApp
	decoder batchpay.TxDecoder
	handler batchpay.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application
func NewBaseApp(store *StoreApp, decoder batchpay.TxDecoder, handler batchpay.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx - ABCI - dispatches to the handler
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	ctx, tx, err := b.prepare("deliver_tx", txBytes)
	if err != nil {
		return batchpay.DeliverTxError(err, b.debug)
	}
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return batchpay.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	ctx, tx, err := b.prepare("check_tx", txBytes)
	if err != nil {
		return batchpay.CheckTxError(err, b.debug)
	}
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return batchpay.CheckOrError(res, err, b.debug)
}

// prepare decodes the transaction and returns the block context annotated
// with the call name, the message path and the encoded size. Decoder panics
// are returned as ErrPanic.
func (b BaseApp) prepare(call string, txBytes []byte) (ctx batchpay.Context, tx batchpay.Tx, err error) {
	ctx = b.BlockContext()
	defer func() {
		if p := recover(); p != nil {
			err = errors.Wrapf(errors.ErrPanic, "decode: %v", p)
		}
		if err != nil {
			batchpay.GetLogger(ctx).Debug("Cannot decode transaction",
				"call", call, "size", len(txBytes), "err", err)
		}
	}()

	if tx, err = b.decoder(txBytes); err != nil {
		return ctx, nil, err
	}
	ctx = batchpay.WithLogInfo(ctx,
		"call", call,
		"path", batchpay.GetPath(tx),
		"size", len(txBytes))
	return ctx, tx, nil
}
