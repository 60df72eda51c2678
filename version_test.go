package batchpay_test

import (
	"testing"

	"github.com/iov-one/batchpay"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	defer func() { batchpay.GitCommit = "" }()

	batchpay.GitCommit = ""
	assert.Equal(t, "v0.1.0-dev", batchpay.Version())

	batchpay.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0-dev 12345678", batchpay.Version())
}
