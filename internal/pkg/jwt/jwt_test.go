package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken(t *testing.T) {
	svc := NewJWTService("secret", "1h")

	token, expiresAt, err := svc.GenerateSessionToken("employee", "e1")
	require.NoError(t, err)
	assert.NotZero(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "employee", role)

	employeeID, ok := decoded.Get("employee_id")
	require.True(t, ok)
	assert.Equal(t, "e1", employeeID)
}

func TestGenerateSessionToken_HROmitsEmployee(t *testing.T) {
	svc := NewJWTService("secret", "not-a-duration")

	token, _, err := svc.GenerateSessionToken("hr", "")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	_, ok := decoded.Get("employee_id")
	assert.False(t, ok)
}

func TestDecode_RejectsForeignSignature(t *testing.T) {
	token, _, err := NewJWTService("one", "1h").GenerateSessionToken("hr", "")
	require.NoError(t, err)

	_, err = NewJWTService("two", "1h").JWTAuth().Decode(token)
	assert.Error(t, err)
}
