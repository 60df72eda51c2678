package currency

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
)

// GenesisToken is a token listed in the "currencies" genesis section.
type GenesisToken struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// Initializer registers the genesis tokens. It must run before any
// initializer that creates balances, as the ledger accepts registered
// tokens only.
type Initializer struct{}

var _ batchpay.Initializer = Initializer{}

// FromGenesis registers every listed token. A token is checked the same way
// a CreateMsg is, and the first failing entry aborts the genesis.
func (Initializer) FromGenesis(opts batchpay.Options, kv batchpay.KVStore) error {
	var tokens []GenesisToken
	if err := opts.ReadOptions("currencies", &tokens); err != nil {
		return err
	}

	bucket := NewTokenInfoBucket()
	for i, t := range tokens {
		msg := CreateMsg{Ticker: t.Ticker, Name: t.Name}
		if err := msg.Validate(); err != nil {
			return errors.Wrapf(err, "currency %d", i)
		}
		if err := bucket.Create(kv, t.Ticker, &TokenInfo{Name: t.Name}); err != nil {
			return errors.Wrapf(err, "currency %d", i)
		}
	}
	return nil
}
