package currency

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/x"
)

const newTokenInfoCost = 100

// RegisterQuery will register this bucket as "/tokens"
func RegisterQuery(qr batchpay.QueryRouter) {
	NewTokenInfoBucket().Register("tokens", qr)
}

// RegisterRoutes will instantiate and register all handlers in this package.
// If issuer is set, only that address may register new tokens.
func RegisterRoutes(r batchpay.Registry, auth x.Authenticator, issuer batchpay.Address) {
	r.Handle(&CreateMsg{}, newCreateTokenInfoHandler(auth, issuer))
}

func newCreateTokenInfoHandler(auth x.Authenticator, issuer batchpay.Address) batchpay.Handler {
	return &createTokenInfoHandler{
		auth:   auth,
		issuer: issuer,
		bucket: NewTokenInfoBucket(),
	}
}

// createTokenInfoHandler registers a token. Tokens are never updated, so a
// ticker can be registered only once.
type createTokenInfoHandler struct {
	auth   x.Authenticator
	bucket TokenInfoBucket
	issuer batchpay.Address
}

func (h *createTokenInfoHandler) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &batchpay.CheckResult{GasAllocated: newTokenInfoCost}, nil
}

func (h *createTokenInfoHandler) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.bucket.Create(db, msg.Ticker, &TokenInfo{Name: msg.Name}); err != nil {
		return nil, err
	}
	batchpay.GetLogger(ctx).Info("token registered", "ticker", msg.Ticker, "name", msg.Name)
	return &batchpay.DeliverResult{Data: []byte(msg.Ticker)}, nil
}

func (h *createTokenInfoHandler) validate(ctx batchpay.Context, db batchpay.ReadOnlyKVStore, tx batchpay.Tx) (*CreateMsg, error) {
	if len(h.issuer) != 0 {
		if err := x.RequireSigner(ctx, h.auth, h.issuer, "issuer"); err != nil {
			return nil, err
		}
	}
	var msg CreateMsg
	if err := batchpay.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	switch err := h.bucket.Exists(db, msg.Ticker); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "ticker %s", msg.Ticker)
	case !errors.ErrCurrency.Is(err):
		return nil, err
	}
	return &msg, nil
}
