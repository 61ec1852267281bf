package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"strings"
)

// ErrCrypto is returned for every decrypt failure. Malformed encoding, a
// missing delimiter, truncation and authentication failure are deliberately
// indistinguishable to the caller so the error cannot be used as an oracle.
var ErrCrypto = errors.New("token malformed or decryption failed")

const nonceHexLen = 24 // 12-byte GCM nonce, hex encoded

// Codec encrypts and decrypts short identifier strings into URL-safe opaque
// tokens. The key is process-wide static configuration; rotating it
// invalidates every previously issued token.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec creates a codec from a 32 byte secret key.
func NewCodec(key string) (*Codec, error) {
	if len(key) != 32 {
		return nil, errors.New("encryption key must be exactly 32 bytes")
	}
	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Codec{aead: aead}, nil
}

// Encrypt seals the plaintext under a fresh random nonce and returns
// base64url( hex(nonce) + ":" + hex(ciphertext) ) without padding.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	blob := hex.EncodeToString(nonce) + ":" + hex.EncodeToString(sealed)
	return base64.RawURLEncoding.EncodeToString([]byte(blob)), nil
}

// Decrypt reverses Encrypt. It fails closed: any malformed, truncated or
// tampered token yields ErrCrypto, never partial plaintext.
func (c *Codec) Decrypt(token string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return "", ErrCrypto
	}

	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 || len(parts[0]) != nonceHexLen {
		return "", ErrCrypto
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", ErrCrypto
	}
	sealed, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", ErrCrypto
	}

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrCrypto
	}
	return string(plaintext), nil
}
