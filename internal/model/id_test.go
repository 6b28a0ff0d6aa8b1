package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMessageID(t *testing.T) {
	assert.True(t, ValidMessageID("0123456789abcdef01234567"))
	assert.True(t, ValidMessageID("ABCDEF0123456789abcdef01"))
}

func TestInvalidMessageID(t *testing.T) {
	cases := []string{
		"",
		"short",
		"0123456789abcdef0123456",   // 23 chars
		"0123456789abcdef012345678", // 25 chars
		"0123456789abcdef0123456g",  // non-hex
		"0123456789abcdef 1234567",  // space
	}
	for _, c := range cases {
		assert.False(t, ValidMessageID(c), c)
	}
}
