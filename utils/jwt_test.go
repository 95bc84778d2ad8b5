package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-secret")

	id := primitive.NewObjectID()
	token, err := GenerateJWT(id, "agent@example.com", "Admin")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "agent@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(primitive.NewObjectID(), "a@example.com", "Admin")
	require.Error(t, err)

	_, err = ValidateJWT("whatever")
	require.Error(t, err)
}

func TestJWTExpiryFallsBackOnBadValue(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-secret")

	for _, raw := range []string{"-3", "0", "soon"} {
		t.Setenv("JWT_EXPIRY_HOURS", raw)

		token, err := GenerateJWT(primitive.NewObjectID(), "a@example.com", "salesAgent")
		require.NoError(t, err)

		claims, err := ValidateJWT(token)
		require.NoError(t, err)
		assert.True(t, claims.ExpiresAt.After(time.Now().Add(23*time.Hour)))
	}
}

func TestJWTTamperedTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-secret")

	token, err := GenerateJWT(primitive.NewObjectID(), "a@example.com", "Admin")
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	require.Error(t, err)
}
