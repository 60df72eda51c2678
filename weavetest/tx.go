package weavetest

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
)

// Tx carries a single message and the conditions of its declared signers,
// like the batchpayd transaction does.
type Tx struct {
	Msg batchpay.Msg
	// Signers are returned by GetSigners and published by the signer
	// decorator.
	Signers []batchpay.Condition
	// Err if set is returned by GetMsg.
	Err error
}

var _ batchpay.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (batchpay.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) GetSigners() []batchpay.Condition {
	return tx.Signers
}

func (tx *Tx) Marshal() ([]byte, error) {
	return nil, errors.Wrap(errors.ErrHuman, "test transaction cannot be serialized")
}

func (tx *Tx) Unmarshal([]byte) error {
	return errors.Wrap(errors.ErrHuman, "test transaction cannot be deserialized")
}

// Msg is routed by its RoutePath, which is also its serialized form.
type Msg struct {
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ batchpay.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return []byte(m.RoutePath), nil
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.RoutePath = string(raw)
	return nil
}
