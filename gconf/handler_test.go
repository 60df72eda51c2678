package gconf

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	"github.com/iov-one/batchpay/store"
	"github.com/iov-one/batchpay/weavetest"
	"github.com/iov-one/batchpay/weavetest/assert"
)

type ownedConf struct {
	Owner batchpay.Address `json:"owner,omitempty"`
	Label string           `json:"label,omitempty"`
}

func (c *ownedConf) Marshal() ([]byte, error)   { return json.Marshal(c) }
func (c *ownedConf) Unmarshal(raw []byte) error { return json.Unmarshal(raw, c) }
func (c *ownedConf) GetOwner() batchpay.Address { return c.Owner }
func (c *ownedConf) Validate() error {
	return errors.Wrap(c.Owner.Validate(), "owner")
}

type patchMsg struct {
	Patch *ownedConf
}

func (*patchMsg) Path() string                 { return "test/update_configuration" }
func (*patchMsg) Validate() error              { return nil }
func (m *patchMsg) Marshal() ([]byte, error)   { return json.Marshal(m) }
func (m *patchMsg) Unmarshal(raw []byte) error { return json.Unmarshal(raw, m) }

type noPatchMsg struct {
	weavetest.Msg
}

func TestUpdateConfigurationHandler(t *testing.T) {
	owner := weavetest.NewCondition()
	newOwner := weavetest.NewCondition()
	initAdmin := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	adminFn := func(batchpay.ReadOnlyKVStore) (batchpay.Address, error) {
		return initAdmin.Address(), nil
	}

	cases := map[string]struct {
		Stored    *ownedConf
		InitAdmin func(batchpay.ReadOnlyKVStore) (batchpay.Address, error)
		Signer    batchpay.Condition
		Msg       batchpay.Msg
		WantErr   *errors.Error
		Want      ownedConf
	}{
		"owner changes the label": {
			Stored: &ownedConf{Owner: owner.Address(), Label: "first"},
			Signer: owner,
			Msg:    &patchMsg{Patch: &ownedConf{Label: "second"}},
			Want:   ownedConf{Owner: owner.Address(), Label: "second"},
		},
		"owner hands the configuration over": {
			Stored: &ownedConf{Owner: owner.Address(), Label: "first"},
			Signer: owner,
			Msg:    &patchMsg{Patch: &ownedConf{Owner: newOwner.Address()}},
			Want:   ownedConf{Owner: newOwner.Address(), Label: "first"},
		},
		"only the owner can update": {
			Stored:    &ownedConf{Owner: owner.Address()},
			InitAdmin: adminFn,
			Signer:    initAdmin,
			Msg:       &patchMsg{Patch: &ownedConf{Label: "second"}},
			WantErr:   errors.ErrUnauthorized,
		},
		"init admin creates a missing configuration": {
			InitAdmin: adminFn,
			Signer:    initAdmin,
			Msg:       &patchMsg{Patch: &ownedConf{Owner: owner.Address()}},
			Want:      ownedConf{Owner: owner.Address()},
		},
		"missing configuration requires the init admin": {
			InitAdmin: adminFn,
			Signer:    stranger,
			Msg:       &patchMsg{Patch: &ownedConf{Owner: stranger.Address()}},
			WantErr:   errors.ErrUnauthorized,
		},
		"missing configuration without init admin": {
			Signer:  initAdmin,
			Msg:     &patchMsg{Patch: &ownedConf{Owner: owner.Address()}},
			WantErr: errors.ErrUnauthorized,
		},
		"created configuration must be valid": {
			InitAdmin: adminFn,
			Signer:    initAdmin,
			Msg:       &patchMsg{Patch: &ownedConf{Label: "no owner"}},
			WantErr:   errors.ErrEmpty,
		},
		"patch is required": {
			Stored:  &ownedConf{Owner: owner.Address()},
			Signer:  owner,
			Msg:     &patchMsg{},
			WantErr: errors.ErrState,
		},
		"message without a patch field": {
			Stored:  &ownedConf{Owner: owner.Address()},
			Signer:  owner,
			Msg:     &noPatchMsg{weavetest.Msg{RoutePath: "test/update_configuration"}},
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.Stored != nil {
				assert.Nil(t, Save(db, "pkg", tc.Stored))
			}
			h := NewUpdateConfigurationHandler("pkg", &ownedConf{}, weavetest.NewAuth(tc.Signer), tc.InitAdmin)
			tx := &weavetest.Tx{Msg: tc.Msg}

			cache := db.CacheWrap()
			_, err := h.Check(context.Background(), cache, tx)
			cache.Discard()
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}

			_, err = h.Deliver(context.Background(), db, tx)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}

			var got ownedConf
			assert.Nil(t, Load(db, "pkg", &got))
			assert.Equal(t, tc.Want, got)
		})
	}
}
