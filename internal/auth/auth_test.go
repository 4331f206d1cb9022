package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPasswordRoundTrip verifies a hashed password verifies and a wrong one
// does not.
func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("correct horse battery staple", hash))
	assert.False(t, VerifyPassword("wrong password", hash))
	assert.False(t, VerifyPassword("", hash))
}

// TestIssueAndVerify verifies a freshly issued token round-trips with its
// claims intact.
func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokens([]byte("test-secret"), "test-issuer", time.Hour)

	signed, err := tokens.Issue("admin")
	require.NoError(t, err)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

// TestVerify_WrongSecret verifies tokens signed with another key fail.
func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokens([]byte("secret-a"), "test-issuer", time.Hour)
	verifier := NewTokens([]byte("secret-b"), "test-issuer", time.Hour)

	signed, err := issuer.Issue("admin")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

// TestVerify_WrongIssuer verifies issuer mismatch is rejected.
func TestVerify_WrongIssuer(t *testing.T) {
	issuer := NewTokens([]byte("test-secret"), "issuer-a", time.Hour)
	verifier := NewTokens([]byte("test-secret"), "issuer-b", time.Hour)

	signed, err := issuer.Issue("admin")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

// TestVerify_Expired verifies tokens past their lifetime (and leeway) fail.
func TestVerify_Expired(t *testing.T) {
	tokens := NewTokens([]byte("test-secret"), "test-issuer", -2*time.Minute)
	// Negative TTL falls back to one hour, so build an expired token by hand.
	expired := &Tokens{secret: []byte("test-secret"), issuer: "test-issuer", ttl: -2 * time.Minute}

	signed, err := expired.Issue("admin")
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

// TestVerify_Garbage verifies malformed input fails cleanly.
func TestVerify_Garbage(t *testing.T) {
	tokens := NewTokens([]byte("test-secret"), "test-issuer", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

// TestNewTokens_TTLFallback verifies non-positive TTLs default to one hour.
func TestNewTokens_TTLFallback(t *testing.T) {
	assert.Equal(t, time.Hour, NewTokens(nil, "", 0).TTL())
	assert.Equal(t, time.Hour, NewTokens(nil, "", -time.Minute).TTL())
	assert.Equal(t, 15*time.Minute, NewTokens(nil, "", 15*time.Minute).TTL())
}
