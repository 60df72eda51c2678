package batchpay_test

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("test hexademical address printing", t, func() {
		b := []byte("ABCD123456LHB")
		addr := batchpay.Address(b)

		So(addr.String(), ShouldEqual, "414243443132333435364C4842")
		So(addr.String(), ShouldEqual, strings.ToUpper(hex.EncodeToString(b)))
		So(batchpay.Address(nil).String(), ShouldEqual, "(nil)")
	})
}

func TestConditionParsing(t *testing.T) {
	cond := batchpay.NewCondition("sigs", "ed25519", []byte{0xAB, 0x01})

	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, []byte{0xAB, 0x01}, data)
	assert.Equal(t, "sigs/ed25519/AB01", cond.String())
	assert.NoError(t, cond.Validate())

	bad := batchpay.Condition("no/slashes")
	assert.True(t, errors.ErrInput.Is(bad.Validate()))
	_, _, _, err = bad.Parse()
	assert.True(t, errors.ErrInput.Is(err))

	raw, err := json.Marshal(cond)
	require.NoError(t, err)
	var got batchpay.Condition
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, cond, got)
}

func TestParseAddress(t *testing.T) {
	cond := batchpay.NewCondition("sigs", "ed25519", []byte{0xAB, 0x01})
	addr := cond.Address()
	bech, err := addr.Bech32("tiov")
	require.NoError(t, err)

	cases := map[string]struct {
		enc     string
		want    batchpay.Address
		wantErr *errors.Error
	}{
		"hex":            {enc: addr.String(), want: addr},
		"prefixed hex":   {enc: "hex:" + addr.String(), want: addr},
		"condition":      {enc: "cond:" + cond.String(), want: addr},
		"bech32":         {enc: "bech32:" + bech, want: addr},
		"empty":          {enc: "", want: nil},
		"too short":      {enc: "AB01", wantErr: errors.ErrInput},
		"not hex":        {enc: "zzzz", wantErr: errors.ErrInput},
		"unknown format": {enc: "base64:AAAA", wantErr: errors.ErrType},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := batchpay.ParseAddress(tc.enc)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := batchpay.NewCondition("test", "seq", []byte{1}).Address()

	raw, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(raw))

	var got batchpay.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, addr.Equals(got))

	assert.True(t, errors.ErrEmpty.Is(batchpay.Address(nil).Validate()))
	assert.True(t, errors.ErrInput.Is(batchpay.Address("short").Validate()))

	cpy := addr.Clone()
	cpy[0]++
	assert.False(t, addr.Equals(cpy))
}
