package security

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	// ErrTokenExpired marks a structurally valid magic-link token past its TTL.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid marks a magic-link token that fails decryption or parsing.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrInvalidIdentifier marks a vendor URL identifier without the expected shape.
	ErrInvalidIdentifier = errors.New("invalid vendor identifier")
)

const vendorURLPrefix = "v_"

// DefaultTokenTTL bounds how long a magic link stays usable.
const DefaultTokenTTL = 24 * time.Hour

// MagicLinkClaims is the full claim set embedded in a magic-link token.
// Validation needs no database round-trip; the token is self-contained.
// The trade-off is non-revocability: reuse must be handled by re-checking
// vendor state at consumption time, not token state.
type MagicLinkClaims struct {
	VendorID string `json:"vendor_id"`
	Email    string `json:"email"`
	Plan     string `json:"plan"`
	IssuedAt int64  `json:"issued_at"` // unix milliseconds
	Nonce    string `json:"nonce"`
}

// TokenManager issues and validates magic-link tokens and opaque vendor URL
// identifiers on top of the symmetric Codec.
type TokenManager struct {
	codec *Codec
	ttl   time.Duration
	now   func() time.Time
}

func NewTokenManager(codec *Codec, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{codec: codec, ttl: ttl, now: time.Now}
}

// Issue packs the claim set as JSON and encrypts it into an opaque token.
func (m *TokenManager) Issue(vendorID, email, plan string) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	claims := MagicLinkClaims{
		VendorID: vendorID,
		Email:    email,
		Plan:     plan,
		IssuedAt: m.now().UnixMilli(),
		Nonce:    hex.EncodeToString(nonce),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	return m.codec.Encrypt(string(payload))
}

// Validate decrypts and parses a magic-link token. It returns ErrTokenExpired
// once the token is older than the configured TTL and ErrTokenInvalid for
// every decryption or parsing failure.
func (m *TokenManager) Validate(token string) (*MagicLinkClaims, error) {
	payload, err := m.codec.Decrypt(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	var claims MagicLinkClaims
	if err := json.Unmarshal([]byte(payload), &claims); err != nil {
		return nil, ErrTokenInvalid
	}
	if claims.VendorID == "" || claims.IssuedAt == 0 {
		return nil, ErrTokenInvalid
	}

	age := m.now().Sub(time.UnixMilli(claims.IssuedAt))
	if age > m.ttl {
		return nil, ErrTokenExpired
	}
	return &claims, nil
}

// CreateVendorURLID wraps an encrypted vendor ID into a non-enumerable
// dashboard URL identifier.
func (m *TokenManager) CreateVendorURLID(vendorID string) (string, error) {
	encrypted, err := m.codec.Encrypt(vendorID)
	if err != nil {
		return "", err
	}
	return vendorURLPrefix + encrypted, nil
}

// ExtractVendorIDFromURL recovers the vendor ID from a URL identifier
// produced by CreateVendorURLID.
func (m *TokenManager) ExtractVendorIDFromURL(urlID string) (string, error) {
	if !strings.HasPrefix(urlID, vendorURLPrefix) {
		return "", ErrInvalidIdentifier
	}
	vendorID, err := m.codec.Decrypt(strings.TrimPrefix(urlID, vendorURLPrefix))
	if err != nil {
		return "", ErrInvalidIdentifier
	}
	return vendorID, nil
}
