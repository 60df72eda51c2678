package currency

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/coin"
	"github.com/iov-one/batchpay/errors"
)

var _ batchpay.Msg = (*CreateMsg)(nil)

// Path returns the routing path for this message.
func (*CreateMsg) Path() string {
	return "currency/create"
}

// Validate ensures the ticker and name are well formed.
func (m *CreateMsg) Validate() error {
	var errs error
	if !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", m.Ticker))
	}
	if !isTokenName(m.Name) {
		errs = errors.AppendField(errs, "Name", errors.Wrapf(errors.ErrInput, "invalid token name %q", m.Name))
	}
	return errs
}
