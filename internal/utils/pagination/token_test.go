package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeOffsetToken(t *testing.T) {
	token := EncodeOffsetToken(40, 20)
	assert.NotEmpty(t, token, "Token should not be empty")

	offset, limit, err := DecodeOffsetToken(token)
	require.NoError(t, err)
	assert.Equal(t, 40, offset)
	assert.Equal(t, 20, limit)
}

func TestDecodeOffsetToken_Invalid(t *testing.T) {
	tests := map[string]string{
		"not base64":     "%%%",
		"missing fields": base64.RawURLEncoding.EncodeToString([]byte("12")),
		"bad offset":     base64.RawURLEncoding.EncodeToString([]byte("x|10")),
		"negative":       base64.RawURLEncoding.EncodeToString([]byte("-1|10")),
		"zero limit":     base64.RawURLEncoding.EncodeToString([]byte("0|0")),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeOffsetToken(token)
			assert.Error(t, err)
		})
	}
}

func TestNextToken(t *testing.T) {
	assert.Nil(t, NextToken(0, 0, 50), "unbounded listings have no next page")
	assert.Nil(t, NextToken(0, 20, 19), "short page is the last one")

	next := NextToken(20, 20, 20)
	require.NotNil(t, next)
	offset, limit, err := DecodeOffsetToken(*next)
	require.NoError(t, err)
	assert.Equal(t, 40, offset)
	assert.Equal(t, 20, limit)
}
