package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/drinkspot-pos/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("001", auth.RoleAdmin)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "001", claims.CashierID)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := auth.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestPINHashing(t *testing.T) {
	hash, err := auth.HashPIN("4242")
	require.NoError(t, err)

	assert.True(t, auth.CheckPIN(hash, "4242"))
	assert.False(t, auth.CheckPIN(hash, "0000"))
}
