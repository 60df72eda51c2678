package cash

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
)

// Ensure we implement the Msg interface
var _ batchpay.Msg = (*SendMsg)(nil)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
)

// Path returns the routing path for this message
func (*SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible. All problems are reported.
func (s *SendMsg) Validate() error {
	var errs error
	if s.Amount == nil || s.Amount.IsZero() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "zero value send"))
	} else {
		errs = errors.AppendField(errs, "Amount", s.Amount.Validate())
	}
	errs = errors.AppendField(errs, "Source", s.Source.Validate())
	errs = errors.AppendField(errs, "Destination", s.Destination.Validate())
	if len(s.Memo) > maxMemoSize {
		errs = errors.AppendField(errs, "Memo", errors.Wrapf(errors.ErrInput, "longer than %d", maxMemoSize))
	}
	return errs
}
