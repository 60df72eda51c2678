package cash

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/coin"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/orm"
)

var _ orm.Model = (*Wallet)(nil)

// Validate requires a normalized coin set.
func (w *Wallet) Validate() error {
	return coin.Coins(w.Coins).Validate()
}

// WalletWith creates a wallet holding all given coins, combined into a
// normalized set.
func WalletWith(coins ...coin.Coin) (*Wallet, error) {
	cs, err := coin.CombineCoins(coins...)
	if err != nil {
		return nil, err
	}
	return &Wallet{Coins: cs}, nil
}

// Bucket stores wallets under the owner address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for storing wallets.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket("cash", &Wallet{}),
	}
}

// Get returns the wallet of given address. An address that never received
// any coins owns an empty wallet.
func (b Bucket) Get(db batchpay.ReadOnlyKVStore, addr batchpay.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, err
	}
}

// Save stores the wallet of given address. Empty wallets are removed from
// the store.
func (b Bucket) Save(db batchpay.KVStore, addr batchpay.Address, w *Wallet) error {
	if len(w.Coins) != 0 {
		return b.Put(db, addr, w)
	}
	if err := b.Delete(db, addr); err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	return nil
}
