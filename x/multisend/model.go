package multisend

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/gconf"
	"github.com/iov-one/batchpay/orm"
)

// gconfPkg is the name under which Configuration is stored.
const gconfPkg = "multisend"

var _ orm.Model = (*Config)(nil)

// Validate ensures both addresses are set. The fee rate is not bounded.
func (c *Config) Validate() error {
	if err := c.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	if err := c.BankAccount.Validate(); err != nil {
		return errors.Wrap(err, "bank account")
	}
	return nil
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

// Validate requires the owner to be set.
func (c *Configuration) Validate() error {
	return errors.Wrap(c.Owner.Validate(), "owner")
}

// ConfigBucket stores Config instances under the owner address.
type ConfigBucket struct {
	orm.ModelBucket
}

// NewConfigBucket returns a bucket for storing fee configurations.
func NewConfigBucket() ConfigBucket {
	return ConfigBucket{
		ModelBucket: orm.NewModelBucket("msconf", &Config{}),
	}
}

// Registry manages fee configurations. There is at most one configuration
// per owner and only its administrator can change it. Configurations are
// never deleted.
type Registry struct {
	bucket ConfigBucket
}

// NewRegistry returns a registry backed by the config bucket.
func NewRegistry() Registry {
	return Registry{bucket: NewConfigBucket()}
}

// Create stores a new configuration administrated by the owner. It fails
// with ErrDuplicate if the owner already has one.
func (r Registry) Create(db batchpay.KVStore, owner, bankAccount batchpay.Address, feeRate uint64) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	conf := Config{
		FeeRate:     feeRate,
		Admin:       owner,
		BankAccount: bankAccount,
	}
	if err := r.bucket.Insert(db, owner, &conf); err != nil {
		return errors.Wrapf(err, "config of %s", owner)
	}
	return nil
}

// Get returns the configuration of given owner. It fails with ErrNotFound if
// the owner has none.
func (r Registry) Get(db batchpay.ReadOnlyKVStore, owner batchpay.Address) (*Config, error) {
	var conf Config
	if err := r.bucket.One(db, owner, &conf); err != nil {
		return nil, errors.Wrapf(err, "config of %s", owner)
	}
	return &conf, nil
}

// Fee returns the fee rate of given owner.
func (r Registry) Fee(db batchpay.ReadOnlyKVStore, owner batchpay.Address) (uint64, error) {
	conf, err := r.Get(db, owner)
	if err != nil {
		return 0, err
	}
	return conf.FeeRate, nil
}

// Admin returns the administrator of given owner configuration.
func (r Registry) Admin(db batchpay.ReadOnlyKVStore, owner batchpay.Address) (batchpay.Address, error) {
	conf, err := r.Get(db, owner)
	if err != nil {
		return nil, err
	}
	return conf.Admin, nil
}

// BankAccount returns the fee collecting account of given owner
// configuration.
func (r Registry) BankAccount(db batchpay.ReadOnlyKVStore, owner batchpay.Address) (batchpay.Address, error) {
	conf, err := r.Get(db, owner)
	if err != nil {
		return nil, err
	}
	return conf.BankAccount, nil
}

// UpdateFee sets a new fee rate. Only the administrator can do this.
func (r Registry) UpdateFee(db batchpay.KVStore, owner, caller batchpay.Address, feeRate uint64) error {
	return r.update(db, owner, caller, func(c *Config) error {
		c.FeeRate = feeRate
		return nil
	})
}

// UpdateAdmin hands the administration over. Only the current
// administrator can do this.
func (r Registry) UpdateAdmin(db batchpay.KVStore, owner, caller, admin batchpay.Address) error {
	return r.update(db, owner, caller, func(c *Config) error {
		if err := admin.Validate(); err != nil {
			return errors.Wrap(err, "new admin")
		}
		c.Admin = admin
		return nil
	})
}

// UpdateBankAccount sets a new fee collecting account. Only the
// administrator can do this.
func (r Registry) UpdateBankAccount(db batchpay.KVStore, owner, caller, account batchpay.Address) error {
	return r.update(db, owner, caller, func(c *Config) error {
		if err := account.Validate(); err != nil {
			return errors.Wrap(err, "bank account")
		}
		c.BankAccount = account
		return nil
	})
}

func (r Registry) update(db batchpay.KVStore, owner, caller batchpay.Address, change func(*Config) error) error {
	conf, err := r.Get(db, owner)
	if err != nil {
		return err
	}
	if !conf.Admin.Equals(caller) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not the admin", caller)
	}
	if err := change(conf); err != nil {
		return err
	}
	return r.bucket.Put(db, owner, conf)
}

// Owner returns the well known owner whose configuration is used to charge
// batches.
func (r Registry) Owner(db batchpay.ReadOnlyKVStore) (batchpay.Address, error) {
	var c Configuration
	if err := gconf.Load(db, gconfPkg, &c); err != nil {
		return nil, errors.Wrap(err, "cannot load multisend configuration")
	}
	return c.Owner, nil
}
