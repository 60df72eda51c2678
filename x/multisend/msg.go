package multisend

import (
	"fmt"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/coin"
	"github.com/iov-one/batchpay/errors"
)

const (
	pathCreateConfig        = "multisend/create_config"
	pathUpdateFee           = "multisend/update_fee"
	pathUpdateAdmin         = "multisend/update_admin"
	pathUpdateBankAccount   = "multisend/update_bank_account"
	pathSend                = "multisend/send"
	pathUpdateConfiguration = "multisend/update_configuration"
)

var _ batchpay.Msg = (*CreateConfigMsg)(nil)

func (*CreateConfigMsg) Path() string {
	return pathCreateConfig
}

// Validate ensures both addresses are well formed. Any fee rate is accepted.
func (m *CreateConfigMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "BankAccount", m.BankAccount.Validate())
	return errs
}

var _ batchpay.Msg = (*UpdateFeeMsg)(nil)

func (*UpdateFeeMsg) Path() string {
	return pathUpdateFee
}

func (m *UpdateFeeMsg) Validate() error {
	return errors.AppendField(nil, "Admin", m.Admin.Validate())
}

var _ batchpay.Msg = (*UpdateAdminMsg)(nil)

func (*UpdateAdminMsg) Path() string {
	return pathUpdateAdmin
}

func (m *UpdateAdminMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	errs = errors.AppendField(errs, "NewAdmin", m.NewAdmin.Validate())
	return errs
}

var _ batchpay.Msg = (*UpdateBankAccountMsg)(nil)

func (*UpdateBankAccountMsg) Path() string {
	return pathUpdateBankAccount
}

func (m *UpdateBankAccountMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	errs = errors.AppendField(errs, "BankAccount", m.BankAccount.Validate())
	return errs
}

var _ batchpay.Msg = (*SendMsg)(nil)

func (*SendMsg) Path() string {
	return pathSend
}

// Validate checks the shape of the batch. Zero amounts and repeated
// recipients are allowed.
func (m *SendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Sender", m.Sender.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", m.Ticker))
	}
	if len(m.Recipients) != len(m.Amounts) {
		errs = errors.Append(errs, errors.Wrapf(ErrLengthMismatch, "%d recipients, %d amounts", len(m.Recipients), len(m.Amounts)))
	}
	for i, r := range m.Recipients {
		errs = errors.AppendField(errs, fmt.Sprintf("Recipients.%d", i), r.Validate())
	}
	return errs
}

var _ batchpay.Msg = (*UpdateConfigurationMsg)(nil)

func (*UpdateConfigurationMsg) Path() string {
	return pathUpdateConfiguration
}

// Validate requires a patch. Empty patch fields keep the stored value, so
// only a present owner is checked.
func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Field("Patch", errors.ErrEmpty, "required")
	}
	if len(m.Patch.Owner) == 0 {
		return nil
	}
	return errors.AppendField(nil, "Patch.Owner", m.Patch.Owner.Validate())
}
