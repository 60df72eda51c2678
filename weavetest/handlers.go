package weavetest

import "github.com/iov-one/batchpay"

// Handler returns the configured results and counts its calls. Write and
// Panic are applied before any result is returned.
type Handler struct {
	CheckResult batchpay.CheckResult
	CheckErr    error

	DeliverResult batchpay.DeliverResult
	DeliverErr    error

	// Write if set is stored in the database, regardless of the
	// configured error.
	Write *batchpay.Model
	// Panic if set is raised instead of returning a result.
	Panic interface{}

	CheckCalls   int
	DeliverCalls int
}

var _ batchpay.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	h.CheckCalls++
	if err := h.act(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	h.DeliverCalls++
	if err := h.act(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) act(db batchpay.KVStore) error {
	if h.Panic != nil {
		panic(h.Panic)
	}
	if h.Write != nil {
		return db.Set(h.Write.Key, h.Write.Value)
	}
	return nil
}
