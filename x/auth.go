package x

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
)

// Authenticator reveals who authorized the transaction being processed.
// Handlers receive it in their constructor instead of reading x/signer
// directly, so that tests can plug in a fixed set of signers.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled.
	GetConditions(batchpay.Context) []batchpay.Condition
	// HasAddress checks if any condition matches this address.
	HasAddress(batchpay.Context, batchpay.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators
func (m MultiAuth) GetConditions(ctx batchpay.Context) []batchpay.Condition {
	var res []batchpay.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx batchpay.Context, addr batchpay.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// RequireSigner returns ErrUnauthorized unless addr authorized the current
// transaction. The role names the party in the error message, for example
// "sender" or "admin".
func RequireSigner(ctx batchpay.Context, auth Authenticator, addr batchpay.Address, role string) error {
	if len(addr) == 0 {
		return errors.Wrapf(errors.ErrUnauthorized, "no %s address", role)
	}
	if !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s signature missing", role)
	}
	return nil
}
