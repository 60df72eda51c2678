package cash

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/coin"
	"github.com/iov-one/batchpay/errors"
)

// TokenChecker decides which tokens the ledger can move.
type TokenChecker interface {
	// Exists returns nil if the token with given ticker can be used.
	Exists(db batchpay.ReadOnlyKVStore, ticker string) error
}

// Controller is the wallet ledger. It is safe to use a single instance for
// all transactions.
type Controller struct {
	bucket Bucket
	tokens TokenChecker
}

// NewController returns a ledger backed by the wallet bucket. If tokens is
// nil, any well formed ticker is accepted.
func NewController(tokens TokenChecker) Controller {
	return Controller{
		bucket: NewBucket(),
		tokens: tokens,
	}
}

// Balance returns the amount of given token held by the address.
func (c Controller) Balance(db batchpay.ReadOnlyKVStore, addr batchpay.Address, ticker string) (uint64, error) {
	w, err := c.bucket.Get(db, addr)
	if err != nil {
		return 0, errors.Wrap(err, "cannot load wallet")
	}
	return coin.Coins(w.Coins).Balance(ticker), nil
}

// Withdraw takes given amount out of the address wallet and returns it. It
// fails if the wallet does not hold enough or the token cannot be moved.
func (c Controller) Withdraw(db batchpay.KVStore, addr batchpay.Address, amount coin.Coin) (coin.Coin, error) {
	if err := c.checkCoin(db, addr, amount); err != nil {
		return coin.Coin{}, err
	}
	if amount.IsZero() {
		return amount, nil
	}
	w, err := c.bucket.Get(db, addr)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "cannot load wallet")
	}
	rest, err := coin.Coins(w.Coins).Subtract(amount)
	if err != nil {
		return coin.Coin{}, errors.Wrapf(err, "withdraw from %s", addr)
	}
	w.Coins = rest
	if err := c.bucket.Save(db, addr, w); err != nil {
		return coin.Coin{}, errors.Wrap(err, "cannot save wallet")
	}
	return amount, nil
}

// Deposit adds given coins to the address wallet. It fails if the address
// cannot receive the token.
func (c Controller) Deposit(db batchpay.KVStore, addr batchpay.Address, amount coin.Coin) error {
	if err := c.checkCoin(db, addr, amount); err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}
	w, err := c.bucket.Get(db, addr)
	if err != nil {
		return errors.Wrap(err, "cannot load wallet")
	}
	total, err := coin.Coins(w.Coins).Add(amount)
	if err != nil {
		return errors.Wrapf(err, "deposit to %s", addr)
	}
	w.Coins = total
	if err := c.bucket.Save(db, addr, w); err != nil {
		return errors.Wrap(err, "cannot save wallet")
	}
	return nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't have sufficient coins, it fails.
func (c Controller) MoveCoins(db batchpay.KVStore, src, dest batchpay.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "zero value")
	}
	moved, err := c.Withdraw(db, src, amount)
	if err != nil {
		return err
	}
	return c.Deposit(db, dest, moved)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c Controller) IssueCoins(db batchpay.KVStore, dest batchpay.Address, amount coin.Coin) error {
	return c.Deposit(db, dest, amount)
}

func (c Controller) checkCoin(db batchpay.ReadOnlyKVStore, addr batchpay.Address, amount coin.Coin) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if err := amount.Validate(); err != nil {
		return err
	}
	if c.tokens != nil {
		if err := c.tokens.Exists(db, amount.Ticker); err != nil {
			return err
		}
	}
	return nil
}
