package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateParse(t *testing.T) {
	m := NewJWTManager("testsecret", 30*time.Minute)

	token, exp, err := m.Generate("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
}

func TestJWTParseExpired(t *testing.T) {
	m := NewJWTManager("testsecret", -time.Minute)

	token, _, err := m.Generate("alice@example.com")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestJWTParseWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", 30*time.Minute)
	verifier := NewJWTManager("secret-b", 30*time.Minute)

	token, _, err := issuer.Generate("alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestJWTParseGarbage(t *testing.T) {
	m := NewJWTManager("testsecret", 30*time.Minute)

	for _, tok := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := m.Parse(tok)
		assert.Error(t, err, "token %q should not parse", tok)
	}
}
