package utils

import (
	"testing"
	"time"

	"music_library/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func testUser() *domain.User {
	return &domain.User{ID: "0b3c7a9e-5d1f-4c2a-9e6b-1f2d3c4b5a69", Email: "a@x.com", Role: domain.RoleEditor}
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	require.NoError(t, err)

	identity, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, testUser().ID, identity.ID)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.Equal(t, domain.RoleEditor, identity.Role)
}

func TestGenerateJWT_DefaultTTL(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, 0)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, DefaultTokenTTL, lifetime)
}

func TestParseJWT_Rejects(t *testing.T) {
	valid, err := GenerateJWT(testUser(), testSecret, time.Hour)
	require.NoError(t, err)
	// GenerateJWT treats a non-positive ttl as the default, so build an expired token by hand
	expiredClaims := Claims{
		ID:   testUser().ID,
		Role: domain.RoleViewer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: "x", Role: domain.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		key   string
	}{
		{"empty", "", testSecret},
		{"garbage", "not.a.token", testSecret},
		{"wrong secret", valid, "other-secret"},
		{"expired", expired, testSecret},
		{"none algorithm", noneAlg, testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := ParseJWT(tt.token, tt.key)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseJWT_RejectsUnknownRole(t *testing.T) {
	claims := Claims{
		ID:   "user-1",
		Role: "superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
