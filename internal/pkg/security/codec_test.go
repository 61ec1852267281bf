package security

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(testKey)
	require.NoError(t, err)
	return c
}

func TestNewCodecRejectsBadKeyLength(t *testing.T) {
	for _, key := range []string{"", "short", "0123456789abcdef0123456789abcdef00"} {
		_, err := NewCodec(key)
		assert.Error(t, err, "key %q should be rejected", key)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	c := newTestCodec(t)

	for _, plaintext := range []string{
		"a",
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
		`{"vendor_id":"x","email":"jo@acme.test"}`,
	} {
		token, err := c.Encrypt(plaintext)
		require.NoError(t, err)

		got, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestCodecTokensAreURLSafe(t *testing.T) {
	c := newTestCodec(t)

	token, err := c.Encrypt("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	require.NoError(t, err)

	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
}

func TestCodecNonceIsRandomPerCall(t *testing.T) {
	c := newTestCodec(t)

	first, err := c.Encrypt("same-plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same-plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCodecTamperRejection(t *testing.T) {
	c := newTestCodec(t)

	token, err := c.Encrypt("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)

	// Flip one byte at every position; none may decrypt to anything.
	for i := range raw {
		mutated := make([]byte, len(raw))
		copy(mutated, raw)
		mutated[i] ^= 0x01

		_, err := c.Decrypt(base64.RawURLEncoding.EncodeToString(mutated))
		assert.ErrorIs(t, err, ErrCrypto, "byte flip at %d must not decrypt", i)
	}
}

func TestCodecDecryptFailsClosed(t *testing.T) {
	c := newTestCodec(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not base64", token: "!!!not-base64!!!"},
		{name: "no delimiter", token: base64.RawURLEncoding.EncodeToString([]byte("deadbeef"))},
		{name: "short nonce", token: base64.RawURLEncoding.EncodeToString([]byte("abcd:deadbeef"))},
		{name: "bad hex", token: base64.RawURLEncoding.EncodeToString([]byte("zzzzzzzzzzzzzzzzzzzzzzzz:deadbeef"))},
		{name: "truncated ciphertext", token: base64.RawURLEncoding.EncodeToString([]byte("000102030405060708090a0b:00"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.token)
			assert.ErrorIs(t, err, ErrCrypto)
		})
	}
}

func TestCodecWrongKey(t *testing.T) {
	c := newTestCodec(t)
	other, err := NewCodec("ffffffffffffffffffffffffffffffff")
	require.NoError(t, err)

	token, err := c.Encrypt("secret-vendor-id")
	require.NoError(t, err)

	_, err = other.Decrypt(token)
	assert.ErrorIs(t, err, ErrCrypto)
}
