package cash

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/coin"
	"github.com/iov-one/batchpay/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use batchpay.Address, so address in hex, not base64
type GenesisAccount struct {
	Address batchpay.Address `json:"address"`
	Coins   []coin.Coin      `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ batchpay.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts batchpay.Options, kv batchpay.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		wallet, err := WalletWith(acct.Coins...)
		if err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := bucket.Save(kv, acct.Address, wallet); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
