package multisend

import "github.com/iov-one/batchpay/errors"

// ErrLengthMismatch is returned when the recipient and amount lists of a
// batch differ in length.
var ErrLengthMismatch = errors.Register(1000, "length mismatch")
