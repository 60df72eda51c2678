package utils

import (
	"time"

	"github.com/iov-one/batchpay"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ batchpay.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx, next batchpay.Checker) (*batchpay.CheckResult, error) {
	ctx = batchpay.WithLogInfo(ctx, "path", batchpay.GetPath(tx))
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx, next batchpay.Deliverer) (*batchpay.DeliverResult, error) {
	ctx = batchpay.WithLogInfo(ctx, "path", batchpay.GetPath(tx))
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx batchpay.Context, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := batchpay.GetLogger(ctx).With("duration", delta/time.Microsecond)
	if height, ok := batchpay.GetHeight(ctx); ok {
		logger = logger.With("height", height)
	}

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	switch {
	case err != nil:
		logger.With("err", err).Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
