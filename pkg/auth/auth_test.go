package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateToken("owner@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, "owner@example.com", claims.Subject)
}

func TestJWTRejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).GenerateToken("owner@example.com")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)
	svc.tokenLifespan = -time.Minute

	token, err := svc.GenerateToken("owner@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret", ""))
}

func TestAllowList(t *testing.T) {
	al := NewAllowList([]string{" Owner@Example.com ", ""})

	assert.True(t, al.Allowed("owner@example.com"))
	assert.True(t, al.Allowed("OWNER@example.COM"))
	assert.False(t, al.Allowed("intruder@example.com"))
	assert.Equal(t, 1, al.Len())

	var empty *AllowList
	assert.False(t, empty.Allowed("owner@example.com"))
}
