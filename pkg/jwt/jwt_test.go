package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "secreto"

func TestGenerateYParse(t *testing.T) {
	token, err := Generate(secret, "admin-1", true, "stock-api", 60)
	require.NoError(t, err)

	claims, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.True(t, claims.Superuser)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "stock-api", claims.Issuer)
}

func TestParseSecretIncorrecto(t *testing.T) {
	token, err := Generate(secret, "admin-1", false, "stock-api", 60)
	require.NoError(t, err)

	_, err = Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParseExpirado(t *testing.T) {
	token, err := Generate(secret, "admin-1", false, "stock-api", -1)
	require.NoError(t, err)

	_, err = Parse(secret, token)
	assert.Error(t, err)
}

func TestTiposDeToken(t *testing.T) {
	access, err := Generate(secret, "admin-1", false, "stock-api", 60)
	require.NoError(t, err)
	refresh, err := GenerateRefresh(secret, "admin-1", false, "stock-api", 24)
	require.NoError(t, err)

	_, err = ParseAccess(secret, access)
	assert.NoError(t, err)
	_, err = ParseAccess(secret, refresh)
	assert.Error(t, err, "un refresh no sirve como access")

	_, err = ParseRefresh(secret, refresh)
	assert.NoError(t, err)
	_, err = ParseRefresh(secret, access)
	assert.Error(t, err, "un access no sirve como refresh")
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "admin-1", false, "stock-api", 60)
	assert.Error(t, err)
	_, err = Parse("", "lo-que-sea")
	assert.Error(t, err)
}
