package app

import (
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/iov-one/batchpay/x/cash"
	"github.com/iov-one/batchpay/x/currency"
	"github.com/iov-one/batchpay/x/multisend"
	"github.com/stretchr/testify/require"
)

func TestTxDecoding(t *testing.T) {
	signer := weavetest.NewCondition()
	msg := &multisend.UpdateFeeMsg{Admin: signer.Address(), FeeRate: 3}

	tx, err := NewTx(msg, signer)
	require.NoError(t, err)
	raw, err := tx.Marshal()
	require.NoError(t, err)

	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	got, err := decoded.GetMsg()
	require.NoError(t, err)
	require.Equal(t, msg, got)
	require.Equal(t, []batchpay.Condition{signer}, decoded.(*Tx).GetSigners())
	require.Equal(t, "multisend/update_fee", batchpay.GetPath(decoded))
}

func TestTxMessages(t *testing.T) {
	cases := map[string]struct {
		Tx       *Tx
		WantErr  *errors.Error
		WantPath string
	}{
		"no message": {
			Tx:      &Tx{},
			WantErr: errors.ErrInput,
		},
		"empty sum": {
			Tx:      &Tx{Sum: &Tx_CashSendMsg{}},
			WantErr: errors.ErrState,
		},
		"cash send": {
			Tx:       &Tx{Sum: &Tx_CashSendMsg{&cash.SendMsg{}}},
			WantPath: "cash/send",
		},
		"multisend configuration": {
			Tx:       &Tx{Sum: &Tx_MultisendUpdateConfigurationMsg{&multisend.UpdateConfigurationMsg{}}},
			WantPath: "multisend/update_configuration",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := tc.Tx.GetMsg()
			if tc.WantErr != nil {
				require.True(t, tc.WantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.WantPath, msg.Path())
		})
	}

	_, err := NewTx(&weavetest.Msg{RoutePath: "test/unknown"})
	require.True(t, errors.ErrType.Is(err))
}

func TestTxDecodingErrors(t *testing.T) {
	_, err := TxDecoder([]byte{0xff, 0xff, 0xff})
	require.True(t, errors.ErrInput.Is(err))

	// Only the last message of the sum is kept.
	first, err := NewTx(&currency.CreateMsg{Ticker: "ETH", Name: "ether"})
	require.NoError(t, err)
	second, err := NewTx(&multisend.UpdateFeeMsg{FeeRate: 7})
	require.NoError(t, err)
	a, err := first.Marshal()
	require.NoError(t, err)
	b, err := second.Marshal()
	require.NoError(t, err)

	tx, err := TxDecoder(append(a, b...))
	require.NoError(t, err)
	msg, err := tx.GetMsg()
	require.NoError(t, err)
	require.Equal(t, &multisend.UpdateFeeMsg{FeeRate: 7}, msg)
}
