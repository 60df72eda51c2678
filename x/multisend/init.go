package multisend

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/gconf"
)

// GenesisConfig is a fee configuration declared in the genesis file.
type GenesisConfig struct {
	Owner       batchpay.Address `json:"owner"`
	BankAccount batchpay.Address `json:"bank_account"`
	FeeRate     uint64           `json:"fee_rate"`
}

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ batchpay.Initializer = Initializer{}

// FromGenesis stores the well known owner from the "conf" section and creates
// all configurations listed under "multisend".
func (Initializer) FromGenesis(opts batchpay.Options, kv batchpay.KVStore) error {
	var conf Configuration
	switch err := gconf.InitConfig(kv, opts, gconfPkg, &conf); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		// The owner can be missing, batches fail until it is set.
	default:
		return err
	}

	var state struct {
		Configs []GenesisConfig `json:"configs"`
	}
	if err := opts.ReadOptions("multisend", &state); err != nil {
		return err
	}
	registry := NewRegistry()
	for i, c := range state.Configs {
		if err := registry.Create(kv, c.Owner, c.BankAccount, c.FeeRate); err != nil {
			return errors.Wrapf(err, "config %d", i)
		}
	}
	return nil
}
