package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github/multichain/go-walletcore/internal/util"
)

func TestZeroBytes(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	util.ZeroBytes(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	util.ZeroBytes(nil)
	util.ZeroBytes([]byte{})
}
