/*
Package app links together all the components of the batchpay application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/app"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/store/iavl"
	"github.com/iov-one/batchpay/x"
	"github.com/iov-one/batchpay/x/cash"
	"github.com/iov-one/batchpay/x/currency"
	"github.com/iov-one/batchpay/x/multisend"
	"github.com/iov-one/batchpay/x/signer"
	"github.com/iov-one/batchpay/x/utils"
)

// Authenticator returns the authentication used by all handlers.
func Authenticator() x.Authenticator {
	return signer.Authenticate{}
}

// Chain returns a chain of decorators, to handle authentication, logging, and
// recovery.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		signer.NewDecorator(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		utils.NewSavepoint().OnDeliver(),
	)
}

// Ledger returns the account ledger used to move funds. Only registered
// tokens are accepted.
func Ledger() cash.Controller {
	return cash.NewController(currency.NewTokenInfoBucket())
}

// Router returns a router dispatching all supported messages. The token
// issuer, when set, is also the one allowed to name the multisend owner on a
// chain that did not declare one in genesis.
func Router(auth x.Authenticator, issuer batchpay.Address) *app.Router {
	r := app.NewRouter()
	ledger := Ledger()
	cash.RegisterRoutes(r, auth, ledger)
	currency.RegisterRoutes(r, auth, issuer)
	multisend.RegisterRoutes(r, auth, ledger, confAdmin(issuer))
	return r
}

// confAdmin returns the address allowed to create a missing multisend
// configuration.
func confAdmin(issuer batchpay.Address) func(batchpay.ReadOnlyKVStore) (batchpay.Address, error) {
	return func(batchpay.ReadOnlyKVStore) (batchpay.Address, error) {
		if len(issuer) == 0 {
			return nil, errors.Wrap(errors.ErrNotFound, "no issuer configured")
		}
		return issuer, nil
	}
}

// QueryRouter returns a query router allowing access to "/wallets",
// "/tokens" and "/multisend/configs".
func QueryRouter() batchpay.QueryRouter {
	r := batchpay.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		currency.RegisterQuery,
		multisend.RegisterQuery,
	)
	return r
}

// Stack wires up the router with the decorator chain. This can be passed
// into BaseApp.
func Stack(issuer batchpay.Address) batchpay.Handler {
	auth := Authenticator()
	return Chain().WithHandler(Router(auth, issuer))
}

// Initializers returns the genesis loaders of all extensions. Tokens are
// loaded first so that wallets can reference them.
func Initializers() batchpay.Initializer {
	return batchpay.ChainInitializers(
		currency.Initializer{},
		cash.Initializer{},
		multisend.Initializer{},
	)
}

// Application constructs the ABCI application with the given arguments. If
// you are not sure what to use for the Handler, just use Stack().
func Application(name string, h batchpay.Handler, tx batchpay.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists the data to the
// named path. An empty path results in an in-memory store.
func CommitKVStore(dbPath string) (batchpay.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewCommitStore("", ""), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
