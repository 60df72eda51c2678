package multisend

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/gconf"
	"github.com/iov-one/batchpay/x"
)

const (
	createConfigCost  int64 = 100
	updateConfigCost  int64 = 50
	sendBaseCost      int64 = 100
	sendRecipientCost int64 = 20
)

// RegisterQuery will register the configurations as "/multisend/configs"
func RegisterQuery(qr batchpay.QueryRouter) {
	NewConfigBucket().Register("multisend/configs", qr)
}

// RegisterRoutes will instantiate and register all handlers in this package.
//
// The package configuration naming the well known owner is updated by its
// owner. When it is missing, initConfAdmin returns the only address allowed
// to create it. initConfAdmin may be nil.
func RegisterRoutes(r batchpay.Registry, auth x.Authenticator, ledger Ledger, initConfAdmin func(batchpay.ReadOnlyKVStore) (batchpay.Address, error)) {
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler(gconfPkg, &Configuration{}, auth, initConfAdmin).WithCost(updateConfigCost))
	registry := NewRegistry()
	r.Handle(&CreateConfigMsg{}, &createConfigHandler{auth: auth, registry: registry})
	r.Handle(&UpdateFeeMsg{}, &updateFeeHandler{auth: auth, registry: registry})
	r.Handle(&UpdateAdminMsg{}, &updateAdminHandler{auth: auth, registry: registry})
	r.Handle(&UpdateBankAccountMsg{}, &updateBankAccountHandler{auth: auth, registry: registry})
	r.Handle(&SendMsg{}, &sendHandler{auth: auth, engine: NewEngine(ledger)})
}

type createConfigHandler struct {
	auth     x.Authenticator
	registry Registry
}

var _ batchpay.Handler = (*createConfigHandler)(nil)

func (h *createConfigHandler) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	switch _, err := h.registry.Get(db, msg.Owner); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "config of %s", msg.Owner)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	return &batchpay.CheckResult{GasAllocated: createConfigCost}, nil
}

func (h *createConfigHandler) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.registry.Create(db, msg.Owner, msg.BankAccount, msg.FeeRate); err != nil {
		return nil, err
	}
	batchpay.GetLogger(ctx).Info("multisend config created", "owner", msg.Owner, "fee", msg.FeeRate)
	return &batchpay.DeliverResult{Data: msg.Owner}, nil
}

func (h *createConfigHandler) validate(ctx batchpay.Context, tx batchpay.Tx) (*CreateConfigMsg, error) {
	var msg CreateConfigMsg
	if err := batchpay.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireSigner(ctx, h.auth, msg.Owner, "owner"); err != nil {
		return nil, err
	}
	return &msg, nil
}

// authorizeAdmin ensures the caller signed the transaction and administers
// the configuration of the well known owner, which is returned.
func authorizeAdmin(ctx batchpay.Context, db batchpay.ReadOnlyKVStore, auth x.Authenticator, registry Registry, caller batchpay.Address) (batchpay.Address, error) {
	if err := x.RequireSigner(ctx, auth, caller, "admin"); err != nil {
		return nil, err
	}
	owner, err := registry.Owner(db)
	if err != nil {
		return nil, err
	}
	admin, err := registry.Admin(db, owner)
	if err != nil {
		return nil, err
	}
	if !admin.Equals(caller) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not the admin", caller)
	}
	return owner, nil
}

type updateFeeHandler struct {
	auth     x.Authenticator
	registry Registry
}

var _ batchpay.Handler = (*updateFeeHandler)(nil)

func (h *updateFeeHandler) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &batchpay.CheckResult{GasAllocated: updateConfigCost}, nil
}

func (h *updateFeeHandler) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.registry.UpdateFee(db, owner, msg.Admin, msg.FeeRate); err != nil {
		return nil, err
	}
	batchpay.GetLogger(ctx).Info("multisend fee updated", "fee", msg.FeeRate)
	return &batchpay.DeliverResult{}, nil
}

func (h *updateFeeHandler) validate(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*UpdateFeeMsg, batchpay.Address, error) {
	var msg UpdateFeeMsg
	if err := batchpay.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := authorizeAdmin(ctx, db, h.auth, h.registry, msg.Admin)
	if err != nil {
		return nil, nil, err
	}
	return &msg, owner, nil
}

type updateAdminHandler struct {
	auth     x.Authenticator
	registry Registry
}

var _ batchpay.Handler = (*updateAdminHandler)(nil)

func (h *updateAdminHandler) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &batchpay.CheckResult{GasAllocated: updateConfigCost}, nil
}

func (h *updateAdminHandler) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.registry.UpdateAdmin(db, owner, msg.Admin, msg.NewAdmin); err != nil {
		return nil, err
	}
	batchpay.GetLogger(ctx).Info("multisend admin updated", "admin", msg.NewAdmin)
	return &batchpay.DeliverResult{}, nil
}

func (h *updateAdminHandler) validate(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*UpdateAdminMsg, batchpay.Address, error) {
	var msg UpdateAdminMsg
	if err := batchpay.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := authorizeAdmin(ctx, db, h.auth, h.registry, msg.Admin)
	if err != nil {
		return nil, nil, err
	}
	return &msg, owner, nil
}

type updateBankAccountHandler struct {
	auth     x.Authenticator
	registry Registry
}

var _ batchpay.Handler = (*updateBankAccountHandler)(nil)

func (h *updateBankAccountHandler) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &batchpay.CheckResult{GasAllocated: updateConfigCost}, nil
}

func (h *updateBankAccountHandler) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.registry.UpdateBankAccount(db, owner, msg.Admin, msg.BankAccount); err != nil {
		return nil, err
	}
	batchpay.GetLogger(ctx).Info("multisend bank account updated", "account", msg.BankAccount)
	return &batchpay.DeliverResult{}, nil
}

func (h *updateBankAccountHandler) validate(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*UpdateBankAccountMsg, batchpay.Address, error) {
	var msg UpdateBankAccountMsg
	if err := batchpay.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := authorizeAdmin(ctx, db, h.auth, h.registry, msg.Admin)
	if err != nil {
		return nil, nil, err
	}
	return &msg, owner, nil
}

type sendHandler struct {
	auth   x.Authenticator
	engine Engine
}

var _ batchpay.Handler = (*sendHandler)(nil)

// Check validates the batch and its authorization. Balances are verified
// only when the batch is delivered.
func (h *sendHandler) Check(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	gas := sendBaseCost + int64(len(msg.Recipients))*sendRecipientCost
	return &batchpay.CheckResult{GasAllocated: gas}, nil
}

func (h *sendHandler) Deliver(ctx batchpay.Context, db batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	receipt, err := h.engine.Send(db, msg.Sender, msg.Recipients, msg.Amounts, msg.Ticker)
	if err != nil {
		return nil, err
	}
	batchpay.GetLogger(ctx).Info("batch sent",
		"sender", msg.Sender,
		"ticker", msg.Ticker,
		"fee", receipt.Fee,
		"total", receipt.Total,
		"recipients", receipt.Recipients)
	data, err := receipt.Marshal()
	if err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &batchpay.DeliverResult{Data: data}, nil
}

func (h *sendHandler) validate(ctx batchpay.Context, tx batchpay.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := batchpay.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireSigner(ctx, h.auth, msg.Sender, "sender"); err != nil {
		return nil, err
	}
	return &msg, nil
}
