package weavetest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/iov-one/batchpay"
)

var condCounter uint64

// NewCondition returns a unique condition. Every call produces a condition
// that was never returned before within the test binary.
func NewCondition() batchpay.Condition {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, atomic.AddUint64(&condCounter, 1))
	return batchpay.NewCondition("test", "seq", raw)
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation.
func ParseAddress(t testing.TB, encodedAddress string) batchpay.Address {
	t.Helper()

	addr, err := batchpay.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
