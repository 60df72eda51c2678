package multisend

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/store"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/iov-one/batchpay/weavetest/assert"
)

func TestGenesis(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	bank := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Genesis   string
		WantErr   *errors.Error
		WantOwner batchpay.Address
		WantFee   uint64
	}{
		"owner and config": {
			Genesis: `{
				"conf": {"multisend": {"owner": "` + owner.String() + `"}},
				"multisend": {"configs": [
					{"owner": "` + owner.String() + `", "bank_account": "` + bank.String() + `", "fee_rate": 10}
				]}
			}`,
			WantOwner: owner,
			WantFee:   10,
		},
		"no owner": {
			Genesis: `{
				"multisend": {"configs": [
					{"owner": "` + owner.String() + `", "bank_account": "` + bank.String() + `", "fee_rate": 3}
				]}
			}`,
			WantFee: 3,
		},
		"duplicated config": {
			Genesis: `{
				"multisend": {"configs": [
					{"owner": "` + owner.String() + `", "bank_account": "` + bank.String() + `", "fee_rate": 3},
					{"owner": "` + owner.String() + `", "bank_account": "` + bank.String() + `", "fee_rate": 4}
				]}
			}`,
			WantErr: errors.ErrDuplicate,
		},
		"invalid owner configuration": {
			Genesis: `{"conf": {"multisend": {"owner": ""}}}`,
			WantErr: errors.ErrEmpty,
		},
		"missing bank account": {
			Genesis: `{
				"multisend": {"configs": [{"owner": "` + owner.String() + `", "fee_rate": 3}]}
			}`,
			WantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts batchpay.Options
			if err := json.Unmarshal([]byte(tc.Genesis), &opts); err != nil {
				t.Fatalf("cannot decode genesis: %s", err)
			}
			db := store.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
				return
			}
			assert.Nil(t, err)

			r := NewRegistry()
			if tc.WantOwner != nil {
				got, err := r.Owner(db)
				assert.Nil(t, err)
				assert.Equal(t, tc.WantOwner, got)
			}
			fee, err := r.Fee(db, owner)
			assert.Nil(t, err)
			assert.Equal(t, tc.WantFee, fee)
		})
	}
}
