package app

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/coin"
	"github.com/iov-one/batchpay/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is returned by the ABCI Info call.
const Name = "batchpay"

// DefaultFeeRate is the fee percentage of the generated configuration.
const DefaultFeeRate = 1

// Options are the settings needed to build the application.
type Options struct {
	Home   string
	Logger log.Logger
	Debug  bool
	// Issuer if set is the only address allowed to register tokens.
	Issuer batchpay.Address
}

// GenInitOptions produces the app_state of a development chain. One account
// is funded with the given token and becomes the well known multisend owner,
// the administrator and the bank account of its own fee configuration.
//
// Arguments are an optional ticker (ETH by default) and an optional address
// in any format accepted by ParseAddress. When no address is given, a new
// signer condition is generated and printed to out.
func GenInitOptions(out io.Writer, args []string) (json.RawMessage, error) {
	ticker := "ETH"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %s", ticker)
		}
	}

	var addr batchpay.Address
	if len(args) > 1 {
		a, err := batchpay.ParseAddress(args[1])
		if err != nil {
			return nil, errors.Wrap(err, "address")
		}
		if a == nil {
			return nil, errors.Wrap(errors.ErrEmpty, "address")
		}
		addr = a
	} else {
		cond, err := GenerateCondition()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "generated signer condition: %s\n", cond)
		addr = cond.Address()
	}

	state := map[string]interface{}{
		"currencies": []interface{}{
			map[string]string{"ticker": ticker, "name": "Development token"},
		},
		"cash": []interface{}{
			map[string]interface{}{
				"address": addr,
				"coins":   []coin.Coin{coin.NewCoin(123456789, ticker)},
			},
		},
		"conf": map[string]interface{}{
			"multisend": map[string]interface{}{"owner": addr},
		},
		"multisend": map[string]interface{}{
			"configs": []interface{}{
				map[string]interface{}{
					"owner":        addr,
					"bank_account": addr,
					"fee_rate":     DefaultFeeRate,
				},
			},
		},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInternal, "marshal app state: %s", err)
	}
	return raw, nil
}

// GenerateCondition returns a new random signer condition.
func GenerateCondition() (batchpay.Condition, error) {
	data := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, data); err != nil {
		return nil, errors.Wrapf(errors.ErrInternal, "cannot read random data: %s", err)
	}
	return batchpay.NewCondition("sigs", "ed25519", data), nil
}

// GenerateApp creates the ABCI application for the start command.
func GenerateApp(options *Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "batchpay.db")
	}

	application, err := Application(Name, Stack(options.Issuer), TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())
	if options.Logger != nil {
		application.WithLogger(options.Logger)
	}
	return application, nil
}
