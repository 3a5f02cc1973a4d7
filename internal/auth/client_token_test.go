package auth_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salestrack/sales-service/internal/auth"
	"github.com/salestrack/sales-service/internal/domain"
)

const testSecret = "client-token-test-secret"

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func testIdentity() domain.ClientIdentity {
	return domain.ClientIdentity{
		ID:         "staff-1",
		Name:       "李雷",
		Role:       domain.StaffRoleManager,
		StoreIDs:   []string{"store-1", "store-2"},
		StoreNames: []string{"Downtown", "Airport"},
	}
}

func newManager(t *testing.T, ttl time.Duration, nowUnix int64) *auth.ClientTokenManager {
	t.Helper()
	mgr, err := auth.NewClientTokenManager(testSecret, ttl)
	require.NoError(t, err)
	return mgr.WithClock(fixedClock(nowUnix))
}

func TestNewClientTokenManagerRequiresConfig(t *testing.T) {
	_, err := auth.NewClientTokenManager("", 24*time.Hour)
	assert.ErrorIs(t, err, auth.ErrMissingSecret)

	_, err = auth.NewClientTokenManager(testSecret, 0)
	assert.Error(t, err)

	_, err = auth.NewClientTokenManager(testSecret, -time.Hour)
	assert.Error(t, err)
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	now := int64(1700000000)
	mgr := newManager(t, 24*time.Hour, now)

	token, claims, err := mgr.Issue(testIdentity())
	require.NoError(t, err)

	assert.Equal(t, now, claims.IssuedAt)
	assert.Equal(t, int64(86400), claims.ExpiresAt-claims.IssuedAt)
	assert.Len(t, strings.Split(token, "."), 3)

	user, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity(), *user)
}

func TestIssueEmbedsFixedHeader(t *testing.T) {
	mgr := newManager(t, time.Hour, 1700000000)

	token, _, err := mgr.Issue(testIdentity())
	require.NoError(t, err)

	headerRaw, err := auth.DecodeSegment(strings.Split(token, ".")[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(headerRaw))
}

func TestVerifyRejectsMalformedStructure(t *testing.T) {
	mgr := newManager(t, time.Hour, 1700000000)

	cases := []string{
		"",
		"abc.def",
		"a.b.c.d",
		".b.c",
		"a..c",
		"a.b.",
		"not-a-token",
		"!!!.???.***",
	}
	for _, token := range cases {
		_, err := mgr.Verify(token)
		assert.ErrorIs(t, err, auth.ErrMalformedToken, "token %q", token)
	}
}

func TestVerifyRejectsForeignAlgorithm(t *testing.T) {
	now := int64(1700000000)
	mgr := newManager(t, time.Hour, now)

	headerSeg, err := auth.EncodeJSON(map[string]string{"alg": "none", "typ": "JWT"})
	require.NoError(t, err)
	payloadSeg, err := auth.EncodeJSON(auth.ClientClaims{
		User:      testIdentity(),
		IssuedAt:  now,
		ExpiresAt: now + 3600,
	})
	require.NoError(t, err)
	signingInput := headerSeg + "." + payloadSeg
	token := signingInput + "." + auth.EncodeSegment(auth.Sign(signingInput, []byte(testSecret)))

	_, err = mgr.Verify(token)
	assert.ErrorIs(t, err, auth.ErrUnsupportedAlgorithm)
}

func TestVerifyReportsExpiryBeforeSignature(t *testing.T) {
	now := int64(1700000000)
	issuer := newManager(t, time.Hour, now)

	token, _, err := issuer.Issue(testIdentity())
	require.NoError(t, err)

	// Expired with a valid signature.
	late := newManager(t, time.Hour, now+3600)
	_, err = late.Verify(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)

	// Expired with a garbage signature still reports expiry.
	parts := strings.Split(token, ".")
	garbage := parts[0] + "." + parts[1] + "." + auth.EncodeSegment([]byte("not a signature"))
	_, err = late.Verify(garbage)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestVerifyRejectsMissingExpiry(t *testing.T) {
	now := int64(1700000000)
	mgr := newManager(t, time.Hour, now)

	headerSeg, err := auth.EncodeJSON(auth.Header{Algorithm: "HS256", Type: "JWT"})
	require.NoError(t, err)
	payloadSeg, err := auth.EncodeJSON(map[string]any{
		"user": testIdentity(),
		"iat":  now,
	})
	require.NoError(t, err)
	signingInput := headerSeg + "." + payloadSeg
	token := signingInput + "." + auth.EncodeSegment(auth.Sign(signingInput, []byte(testSecret)))

	_, err = mgr.Verify(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	now := int64(1700000000)
	mgr := newManager(t, time.Hour, now)

	token, _, err := mgr.Issue(testIdentity())
	require.NoError(t, err)
	parts := strings.Split(token, ".")

	payloadRaw, err := auth.DecodeSegment(parts[1])
	require.NoError(t, err)
	var claims auth.ClientClaims
	require.NoError(t, json.Unmarshal(payloadRaw, &claims))

	// Promote the victim's identity but keep the original signature.
	claims.User.ID = "someone-else"
	tamperedSeg, err := auth.EncodeJSON(claims)
	require.NoError(t, err)

	tampered := parts[0] + "." + tamperedSeg + "." + parts[2]
	_, err = mgr.Verify(tampered)
	assert.ErrorIs(t, err, auth.ErrBadSignature)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	now := int64(1700000000)
	mgr := newManager(t, time.Hour, now)

	token, _, err := mgr.Issue(testIdentity())
	require.NoError(t, err)

	other, err := auth.NewClientTokenManager("a-different-secret", time.Hour)
	require.NoError(t, err)
	other.WithClock(fixedClock(now))

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, auth.ErrBadSignature)
}

func TestRoleMappingFromCode(t *testing.T) {
	assert.Equal(t, domain.StaffRoleManager, domain.RoleFromCode(1))
	assert.Equal(t, domain.StaffRoleSalesperson, domain.RoleFromCode(2))
	assert.Equal(t, domain.StaffRoleSalesperson, domain.RoleFromCode(0))
	assert.Equal(t, domain.StaffRoleSalesperson, domain.RoleFromCode(99))
}
