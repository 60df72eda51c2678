package app

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/x/cash"
	"github.com/iov-one/batchpay/x/currency"
	"github.com/iov-one/batchpay/x/multisend"
	"github.com/iov-one/batchpay/x/signer"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (batchpay.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot decode transaction: %s", err)
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ batchpay.Tx = (*Tx)(nil)
var _ signer.SignedTx = (*Tx)(nil)

// GetMsg returns the single message carried in the sum.
func (tx *Tx) GetMsg() (batchpay.Msg, error) {
	return batchpay.ExtractMsgFromSum(tx.GetSum())
}

// NewTx returns a transaction carrying given message.
func NewTx(msg batchpay.Msg, signers ...batchpay.Condition) (*Tx, error) {
	tx := Tx{Signers: signers}
	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.Sum = &Tx_CashSendMsg{m}
	case *currency.CreateMsg:
		tx.Sum = &Tx_CurrencyCreateMsg{m}
	case *multisend.CreateConfigMsg:
		tx.Sum = &Tx_MultisendCreateConfigMsg{m}
	case *multisend.UpdateFeeMsg:
		tx.Sum = &Tx_MultisendUpdateFeeMsg{m}
	case *multisend.UpdateAdminMsg:
		tx.Sum = &Tx_MultisendUpdateAdminMsg{m}
	case *multisend.UpdateBankAccountMsg:
		tx.Sum = &Tx_MultisendUpdateBankAccountMsg{m}
	case *multisend.SendMsg:
		tx.Sum = &Tx_MultisendSendMsg{m}
	case *multisend.UpdateConfigurationMsg:
		tx.Sum = &Tx_MultisendUpdateConfigurationMsg{m}
	default:
		return nil, errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return &tx, nil
}
