package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("signing-key")

	token, err := GenerateToken(key, "session-1", "curl/8.0", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "curl/8.0", claims.UserAgent)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	token, err := GenerateToken([]byte("a"), "session-1", "", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = ParseToken([]byte("b"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	key := []byte("signing-key")
	token, err := GenerateToken(key, "session-1", "", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ParseToken(key, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken([]byte("k"), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
