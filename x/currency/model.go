package currency

import (
	"regexp"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/coin"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/orm"
)

var isTokenName = regexp.MustCompile(`^[A-Za-z0-9 \-_:]{3,32}$`).MatchString

var _ orm.Model = (*TokenInfo)(nil)

func (t *TokenInfo) Validate() error {
	if !isTokenName(t.Name) {
		return errors.Wrapf(errors.ErrModel, "invalid token name %q", t.Name)
	}
	return nil
}

// TokenInfoBucket stores TokenInfo instances, using ticker name (currency
// symbol) as the key.
type TokenInfoBucket struct {
	orm.ModelBucket
}

// NewTokenInfoBucket returns a bucket for storing token information.
func NewTokenInfoBucket() TokenInfoBucket {
	return TokenInfoBucket{
		ModelBucket: orm.NewModelBucket("tokeninfo", &TokenInfo{}),
	}
}

// Get returns the information about the token with given ticker. It fails
// with ErrNotFound if the token was never registered.
func (b TokenInfoBucket) Get(db batchpay.ReadOnlyKVStore, ticker string) (*TokenInfo, error) {
	var t TokenInfo
	if err := b.One(db, []byte(ticker), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create registers a new token. A ticker can be registered only once.
func (b TokenInfoBucket) Create(db batchpay.KVStore, ticker string, t *TokenInfo) error {
	if !coin.IsCC(ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", ticker)
	}
	if err := b.Insert(db, []byte(ticker), t); err != nil {
		return errors.Wrapf(err, "ticker %s", ticker)
	}
	return nil
}

// Exists returns nil if the token with given ticker is registered and
// ErrCurrency otherwise.
func (b TokenInfoBucket) Exists(db batchpay.ReadOnlyKVStore, ticker string) error {
	switch err := b.Has(db, []byte(ticker)); {
	case err == nil:
		return nil
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(errors.ErrCurrency, "%s is not a registered token", ticker)
	default:
		return err
	}
}
