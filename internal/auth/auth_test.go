package auth

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resenia/resenia-server/internal/domain"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("contraseña-segura")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword(hash, "contraseña-segura")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "otra-contraseña")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 2000))
	assert.Error(t, err)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("misma")
	require.NoError(t, err)
	h2, err := HashPassword("misma")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	ok, err := VerifyPassword("not-a-hash", "whatever")
	require.NoError(t, err)
	assert.False(t, ok)
}

func testKeyHex(t *testing.T) string {
	t.Helper()
	return strings.Repeat("ab", 32)
}

func testTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testKeyHex(t), 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)
	return svc
}

func testTokenUser() *domain.User {
	return &domain.User{
		Timestamps: domain.Timestamps{ID: "user-abc"},
		Email:      "ana@example.com",
	}
}

func TestNewTokenService_BadKey(t *testing.T) {
	_, err := NewTokenService("short", time.Minute, time.Hour)
	assert.Error(t, err)

	_, err = NewTokenService(strings.Repeat("z", 64), time.Minute, time.Hour)
	assert.Error(t, err)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	svc := testTokenService(t)

	token, err := svc.GenerateAccessToken(testTokenUser())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-abc", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "user-abc", claims.Subject)
	assert.NotEmpty(t, claims.TokenID)
}

func TestAccessToken_Expired(t *testing.T) {
	svc, err := NewTokenService(testKeyHex(t), -time.Minute, time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(testTokenUser())
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestAccessToken_WrongKey(t *testing.T) {
	svc := testTokenService(t)
	token, err := svc.GenerateAccessToken(testTokenUser())
	require.NoError(t, err)

	other, err := NewTokenService(strings.Repeat("cd", 32), time.Minute, time.Hour)
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestAccessToken_Garbage(t *testing.T) {
	svc := testTokenService(t)
	_, err := svc.VerifyAccessToken("v4.local.garbage")
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	svc := testTokenService(t)

	t1, err := svc.GenerateRefreshToken()
	require.NoError(t, err)
	t2, err := svc.GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)

	// Hash is deterministic and never equals the raw token.
	h1 := HashRefreshToken(t1)
	assert.Equal(t, h1, HashRefreshToken(t1))
	assert.NotEqual(t, t1, h1)
	assert.Len(t, h1, 64)
}

func TestLoadOrGenerateKey(t *testing.T) {
	dir := t.TempDir()

	keyHex, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Len(t, keyHex, 64)
	_, err = hex.DecodeString(keyHex)
	require.NoError(t, err)

	// Second load returns the same key.
	again, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Equal(t, keyHex, again)
}
