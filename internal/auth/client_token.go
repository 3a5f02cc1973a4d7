package auth

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/salestrack/sales-service/internal/domain"
)

// ClientClaims is the payload of a stateless staff token.
type ClientClaims struct {
	User      domain.ClientIdentity `json:"user"`
	IssuedAt  int64                 `json:"iat"`
	ExpiresAt int64                 `json:"exp"`
}

// ClientTokenManager issues and verifies self-contained staff tokens.
// Validity is fully determined by the embedded expiry and the signature; no
// server-side record exists and issued tokens cannot be revoked early.
type ClientTokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewClientTokenManager builds a manager. The secret and a positive lifetime
// are mandatory; config.Load guarantees both before the process serves.
func NewClientTokenManager(secret string, ttl time.Duration) (*ClientTokenManager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, errTokenLifetime
	}
	return &ClientTokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock overrides the time source, for tests.
func (m *ClientTokenManager) WithClock(now func() time.Time) *ClientTokenManager {
	m.now = now
	return m
}

// Issue signs a token embedding the staff identity. iat is now, exp is
// iat plus the configured lifetime, both Unix seconds.
func (m *ClientTokenManager) Issue(user domain.ClientIdentity) (string, ClientClaims, error) {
	iat := m.now().Unix()
	claims := ClientClaims{
		User:      user,
		IssuedAt:  iat,
		ExpiresAt: iat + int64(m.ttl/time.Second),
	}
	token, err := encodeToken(claims, m.secret)
	if err != nil {
		return "", ClientClaims{}, err
	}
	return token, claims, nil
}

// Verify checks a token and returns the embedded identity. Checks run in a
// fixed order so callers see consistent failures: structure, then algorithm,
// then expiry, then signature. A token expired at exactly now is expired.
func (m *ClientTokenManager) Verify(token string) (*domain.ClientIdentity, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, ErrMalformedToken
	}

	headerRaw, err := DecodeSegment(parts[0])
	if err != nil {
		return nil, ErrMalformedToken
	}
	var header Header
	if err := json.Unmarshal(headerRaw, &header); err != nil {
		return nil, ErrMalformedToken
	}
	if header.Algorithm != headerAlgorithm {
		return nil, ErrUnsupportedAlgorithm
	}

	payloadRaw, err := DecodeSegment(parts[1])
	if err != nil {
		return nil, ErrMalformedToken
	}
	var claims ClientClaims
	if err := json.Unmarshal(payloadRaw, &claims); err != nil {
		return nil, ErrMalformedToken
	}
	if claims.ExpiresAt <= m.now().Unix() {
		return nil, ErrExpiredToken
	}

	signature, err := DecodeSegment(parts[2])
	if err != nil {
		return nil, ErrBadSignature
	}
	if !VerifySignature(parts[0]+"."+parts[1], signature, m.secret) {
		return nil, ErrBadSignature
	}

	user := claims.User
	return &user, nil
}
