package multisend

import (
	"math/bits"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/coin"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/x/utils"
)

// Ledger moves funds between accounts. Errors returned by a ledger are
// passed to the caller unchanged.
type Ledger interface {
	// Balance returns the amount of given token held by the account.
	Balance(db batchpay.ReadOnlyKVStore, addr batchpay.Address, ticker string) (uint64, error)
	// Withdraw takes the amount out of the account. It fails if the
	// account does not hold enough or the token is not permitted.
	Withdraw(db batchpay.KVStore, addr batchpay.Address, amount coin.Coin) (coin.Coin, error)
	// Deposit adds the coins to the account. It fails if the account
	// cannot receive the token.
	Deposit(db batchpay.KVStore, addr batchpay.Address, amount coin.Coin) error
}

// Engine executes batch transfers, charging the fee configured by the well
// known owner.
type Engine struct {
	ledger   Ledger
	registry Registry
}

// NewEngine returns an engine moving funds through the given ledger.
func NewEngine(ledger Ledger) Engine {
	return Engine{
		ledger:   ledger,
		registry: NewRegistry(),
	}
}

// Send moves amounts[i] of ticker from the sender to recipients[i] and
// charges the sender a fee of (sum / 100) * feeRate, paid into the bank
// account. Nothing is changed unless every transfer succeeds.
//
// db must be a batchpay.CacheableKVStore, the transfers run in a savepoint of
// it. Any other store fails with ErrHuman and is left untouched.
func (e Engine) Send(db batchpay.KVStore, sender batchpay.Address, recipients []batchpay.Address, amounts []uint64, ticker string) (*Receipt, error) {
	if len(recipients) != len(amounts) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d recipients, %d amounts", len(recipients), len(amounts))
	}
	sum, err := sumAmounts(amounts)
	if err != nil {
		return nil, err
	}

	owner, err := e.registry.Owner(db)
	if err != nil {
		return nil, err
	}
	conf, err := e.registry.Get(db, owner)
	if err != nil {
		return nil, err
	}
	fee, err := computeFee(sum, conf.FeeRate)
	if err != nil {
		return nil, err
	}
	total, carry := bits.Add64(sum, fee, 0)
	if carry != 0 {
		return nil, errors.Wrap(errors.ErrOverflow, "total with fee")
	}

	balance, err := e.ledger.Balance(db, sender, ticker)
	if err != nil {
		return nil, err
	}
	if balance < total {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", balance, total)
	}

	err = utils.InSavepoint(db, func(db batchpay.KVStore) error {
		if err := e.transfer(db, sender, conf.BankAccount, coin.NewCoin(fee, ticker)); err != nil {
			return errors.Wrap(err, "fee")
		}
		for i, r := range recipients {
			if err := e.transfer(db, sender, r, coin.NewCoin(amounts[i], ticker)); err != nil {
				return errors.Wrapf(err, "recipient %d", i)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Receipt{
		Fee:        fee,
		Total:      total,
		Recipients: uint32(len(recipients)),
	}, nil
}

func (e Engine) transfer(db batchpay.KVStore, src, dst batchpay.Address, amount coin.Coin) error {
	tokens, err := e.ledger.Withdraw(db, src, amount)
	if err != nil {
		return err
	}
	return e.ledger.Deposit(db, dst, tokens)
}

// sumAmounts adds all amounts in order, failing on overflow.
func sumAmounts(amounts []uint64) (uint64, error) {
	var sum uint64
	for i, a := range amounts {
		var carry uint64
		sum, carry = bits.Add64(sum, a, 0)
		if carry != 0 {
			return 0, errors.Wrapf(errors.ErrOverflow, "sum at amount %d", i)
		}
	}
	return sum, nil
}

// computeFee returns (sum / 100) * feeRate. The division is truncating and
// happens first, so sums below 100 are free.
func computeFee(sum, feeRate uint64) (uint64, error) {
	hi, fee := bits.Mul64(sum/100, feeRate)
	if hi != 0 {
		return 0, errors.Wrap(errors.ErrOverflow, "fee")
	}
	return fee, nil
}
