package gconf

import (
	"reflect"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/x"
)

// OwnedConfig is a configuration with an owner. A configuration update
// message must be signed by the owner in order to be applied.
type OwnedConfig interface {
	Configuration
	GetOwner() batchpay.Address
}

// UpdateConfigurationHandler applies a configuration patch message. The
// message must have a Patch field of the same type as the configuration.
type UpdateConfigurationHandler struct {
	pkg       string
	config    OwnedConfig
	auth      x.Authenticator
	initAdmin func(batchpay.ReadOnlyKVStore) (batchpay.Address, error)
	cost      int64
}

var _ batchpay.Handler = UpdateConfigurationHandler{}

// NewUpdateConfigurationHandler returns a handler that patches the
// configuration stored for pkg. config is only used to load the current
// state and must be a pointer to the configuration type.
//
// Each message must be signed by the current configuration owner. When no
// configuration exists yet, initConfAdmin provides the only address that can
// create one. It is not consulted anymore once a configuration is stored.
// Without initConfAdmin a configuration can be created only in genesis.
func NewUpdateConfigurationHandler(
	pkg string,
	config OwnedConfig,
	auth x.Authenticator,
	initConfAdmin func(batchpay.ReadOnlyKVStore) (batchpay.Address, error),
) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:       pkg,
		config:    config,
		auth:      auth,
		initAdmin: initConfAdmin,
	}
}

// WithCost returns a handler that allocates given gas on check.
func (h UpdateConfigurationHandler) WithCost(gas int64) UpdateConfigurationHandler {
	h.cost = gas
	return h
}

func (h UpdateConfigurationHandler) Check(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx) (*batchpay.CheckResult, error) {
	if err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &batchpay.CheckResult{GasAllocated: h.cost}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx) (*batchpay.DeliverResult, error) {
	if err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	batchpay.GetLogger(ctx).Info("configuration updated", "package", h.pkg)
	return &batchpay.DeliverResult{}, nil
}

func (h UpdateConfigurationHandler) applyTx(ctx batchpay.Context, store batchpay.KVStore, tx batchpay.Tx) error {
	// Handlers are shared, so every call loads into its own copy.
	config := reflect.New(reflect.TypeOf(h.config).Elem()).Interface().(OwnedConfig)

	switch err := Load(store, h.pkg, config); {
	case err == nil:
		owner := config.GetOwner()
		if owner == nil {
			return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
		}
		if err := x.RequireSigner(ctx, h.auth, owner, "owner"); err != nil {
			return err
		}
	case errors.ErrNotFound.Is(err):
		// The configuration was not created in genesis and is created
		// now for the first time.
		if h.initAdmin == nil {
			return errors.Wrap(errors.ErrUnauthorized, "configuration does not exist and cannot be initialized")
		}
		admin, err := h.initAdmin(store)
		if err != nil {
			return errors.Wrap(err, "get init admin")
		}
		if err := x.RequireSigner(ctx, h.auth, admin, "initialization admin"); err != nil {
			return err
		}
	default:
		return errors.Wrap(err, "load current configuration")
	}

	payload, err := patchPayload(tx)
	if err != nil {
		return errors.Wrap(err, "cannot get message payload")
	}
	if err := patch(config, payload); err != nil {
		return errors.Wrap(err, "cannot patch config with message payload")
	}
	if err := Save(store, h.pkg, config); err != nil {
		return errors.Wrap(err, "cannot save updated config")
	}
	return nil
}

// patch copies all non zero fields of payload into config.
func patch(config OwnedConfig, payload OwnedConfig) error {
	if reflect.TypeOf(payload) != reflect.TypeOf(config) {
		return errors.Wrapf(errors.ErrMsg, "patch of type %T does not match %T", payload, config)
	}
	cval := reflect.ValueOf(config).Elem()
	pval := reflect.ValueOf(payload).Elem()
	for i := 0; i < cval.NumField(); i++ {
		got := pval.Field(i)
		// Zero values do not update the original configuration.
		if isZero(got) {
			continue
		}
		cval.Field(i).Set(got)
	}
	return nil
}

// isZero returns true if given value represents a zero value of a given type.
func isZero(val reflect.Value) bool {
	zero := reflect.Zero(val.Type()).Interface()
	return reflect.DeepEqual(val.Interface(), zero)
}

// patchPayload expects the transaction message to have a "Patch" field of
// the configuration type and returns its content.
func patchPayload(tx batchpay.Tx) (OwnedConfig, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	pval := reflect.ValueOf(msg)
	if pval.Kind() != reflect.Ptr || pval.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container value: %T", msg)
	}
	field := pval.Elem().FieldByName("Patch")
	if !field.IsValid() {
		return nil, errors.Wrapf(errors.ErrInput, `%T has no "Patch" field`, msg)
	}
	if field.Kind() != reflect.Ptr || field.IsNil() {
		return nil, errors.Wrap(errors.ErrState, `"Patch" field is required`)
	}
	payload, ok := field.Interface().(OwnedConfig)
	if !ok {
		return nil, errors.Wrap(errors.ErrInput, `"Patch" field is of a wrong type`)
	}
	return payload, nil
}
