package weavetest

import (
	"context"

	"github.com/iov-one/batchpay"
)

// Auth authenticates a fixed set of signers, regardless of the context.
type Auth struct {
	Signers []batchpay.Condition
}

// NewAuth returns an authenticator that accepts all given signers.
func NewAuth(signers ...batchpay.Condition) *Auth {
	return &Auth{Signers: signers}
}

func (a *Auth) GetConditions(batchpay.Context) []batchpay.Condition {
	return a.Signers
}

func (a *Auth) HasAddress(_ batchpay.Context, addr batchpay.Address) bool {
	return signedBy(a.Signers, addr)
}

type ctxAuthKey string

// CtxAuth authenticates signers stored in the context, the way the signer
// decorator publishes them for real transactions. Each Key holds a separate
// set of signers.
type CtxAuth struct {
	Key string
}

func (a *CtxAuth) SetConditions(ctx batchpay.Context, signers ...batchpay.Condition) batchpay.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), signers)
}

func (a *CtxAuth) GetConditions(ctx batchpay.Context) []batchpay.Condition {
	signers, _ := ctx.Value(ctxAuthKey(a.Key)).([]batchpay.Condition)
	return signers
}

func (a *CtxAuth) HasAddress(ctx batchpay.Context, addr batchpay.Address) bool {
	return signedBy(a.GetConditions(ctx), addr)
}

func signedBy(signers []batchpay.Condition, addr batchpay.Address) bool {
	for _, s := range signers {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
