package currency

import (
	"encoding/json"

	"github.com/iov-one/batchpay"
)

func jsonOptions(raw string, opts *batchpay.Options) error {
	return json.Unmarshal([]byte(raw), opts)
}
